package enquiry

import (
	"context"
	"fmt"

	"github.com/rockridgeglobal/enquiry-relay/internal/branch"
	"github.com/rockridgeglobal/enquiry-relay/internal/mailer"
	"github.com/rockridgeglobal/enquiry-relay/internal/whatsapp"
)

// Banner texts per strategy, matching the pages.
const (
	whatsappStatusMessage = "Opening WhatsApp... Please send the message to complete your enquiry."
	emailStatusMessage    = "Thank you! We've received your enquiry and will contact you soon."
)

// WhatsAppDispatcher composes a wa.me deep link for the resolved branch. The
// hosting page opens the link in a new browsing context.
type WhatsAppDispatcher struct{}

func (WhatsAppDispatcher) Dispatch(_ context.Context, e *Enquiry) (Receipt, error) {
	_, rec := branch.Resolve(e.PreferredBranch, e.SourceBranch)
	text := FormatText(e, rec)
	return Receipt{
		WhatsAppURL:   whatsapp.DeepLink(rec.Phone, text),
		StatusMessage: whatsappStatusMessage,
	}, nil
}

// MailDispatcher relays the enquiry as an email.
type MailDispatcher struct {
	Sender mailer.Sender
}

func (d MailDispatcher) Dispatch(ctx context.Context, e *Enquiry) (Receipt, error) {
	_, rec := branch.Resolve(e.PreferredBranch, e.SourceBranch)

	html, err := FormatHTML(e, rec)
	if err != nil {
		return Receipt{}, err
	}

	id, err := d.Sender.Send(ctx, mailer.Message{
		Subject: Subject(e),
		Text:    FormatText(e, rec),
		HTML:    html,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("relay enquiry email: %w", err)
	}

	return Receipt{MessageID: id, StatusMessage: emailStatusMessage}, nil
}
