package enquiry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rockridgeglobal/enquiry-relay/internal/app"
	"github.com/rockridgeglobal/enquiry-relay/internal/branch"
	"github.com/rockridgeglobal/enquiry-relay/internal/config"
	"github.com/rockridgeglobal/enquiry-relay/internal/mailer"
	"github.com/rockridgeglobal/enquiry-relay/internal/schedule"
	"github.com/rockridgeglobal/enquiry-relay/internal/whatsapp"
)

// Response wording kept stable for the pages that consume this API.
const (
	errMissingFields   = "Missing required fields: parentName and phone are required."
	errInvalidPhoneMsg = "Invalid phone number. Must be at least 10 digits."
	errAuthFailed      = "SMTP authentication failed. Please check your Gmail App Password configuration."
	errSendFailed      = "Failed to send email. Please try again or contact us directly."
	errGeneric         = "Failed to process your request. Please try again later."
	okEmailSent        = "Email sent successfully! We will contact you soon."
)

// Handlers contains HTTP handlers for enquiry submission
type Handlers struct {
	app        *app.App
	sender     mailer.Sender
	dispatcher Dispatcher
	sched      schedule.Scheduler
}

// NewHandlers wires the enquiry endpoints: a direct email relay plus the
// deployment's configured dispatch strategy for controller submissions.
func NewHandlers(a *app.App) *Handlers {
	sender := mailer.New(a.Config.MailerConfig(), a.Logger)

	var dispatcher Dispatcher
	if a.Config.DispatchStrategy == config.StrategyWhatsApp {
		dispatcher = WhatsAppDispatcher{}
	} else {
		dispatcher = MailDispatcher{Sender: sender}
	}

	return &Handlers{
		app:        a,
		sender:     sender,
		dispatcher: dispatcher,
		sched:      schedule.New(),
	}
}

// SendEmailHandler relays a form submission as an email. The backend
// re-validates and re-formats independently of whatever the page did.
func (h *Handlers) SendEmailHandler(c *gin.Context) {
	var e Enquiry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format"})
		return
	}

	if err := e.Validate(); err != nil {
		msg := errMissingFields
		if err == ErrInvalidPhone {
			msg = errInvalidPhoneMsg
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	h.fillDefaults(&e)

	_, rec := branch.Resolve(e.PreferredBranch, e.SourceBranch)

	html, err := FormatHTML(&e, rec)
	if err != nil {
		h.app.Logger.Printf("Error rendering enquiry email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errGeneric})
		return
	}

	messageID, err := h.sender.Send(c.Request.Context(), mailer.Message{
		Subject: Subject(&e),
		Text:    FormatText(&e, rec),
		HTML:    html,
	})
	if err != nil {
		h.respondSendError(c, err)
		return
	}

	h.app.Logger.Printf("Enquiry from %s relayed, message id %s", e.ParentName, messageID)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   okEmailSent,
		"messageId": messageID,
	})
}

func (h *Handlers) respondSendError(c *gin.Context, err error) {
	// Details stay in the server log; callers get a category message.
	h.app.Logger.Printf("Email sending failed: %v", err)

	var cfgErr *mailer.ConfigError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": cfgErr.Error()})
		return
	}
	if mailer.IsAuthError(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errAuthFailed})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errSendFailed})
}

// SubmitHandler runs a submission through the form controller with the
// deployment's dispatch strategy. Deep-link deployments get the wa.me URL
// back to open in a new browsing context.
func (h *Handlers) SubmitHandler(c *gin.Context) {
	var e Enquiry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format"})
		return
	}

	// A fresh controller per request: the in-flight guard protects one
	// form, and unrelated visitors never contend on shared state.
	controller := NewController(h.dispatcher, h.sched, h.app.Logger)

	receipt, err := controller.Submit(c.Request.Context(), &e)
	if err != nil {
		if verr, ok := IsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": verr.Message})
			return
		}
		if err == ErrSubmissionInFlight {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Please wait, your previous enquiry is still being sent.",
			})
			return
		}
		h.respondSendError(c, err)
		return
	}

	resp := gin.H{"success": true, "message": receipt.StatusMessage}
	if receipt.WhatsAppURL != "" {
		resp["whatsappUrl"] = receipt.WhatsAppURL
	}
	if receipt.MessageID != "" {
		resp["messageId"] = receipt.MessageID
	}
	c.JSON(http.StatusOK, resp)
}

// WhatsAppQRHandler renders a branch's wa.me link as a PNG QR code.
func (h *Handlers) WhatsAppQRHandler(c *gin.Context) {
	name := branch.DetectSource(c.Query("branch"), "")
	if name == branch.SourceUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown branch"})
		return
	}
	_, rec := branch.Resolve(name, name)

	size := 256
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 64 && v <= 1024 {
			size = v
		}
	}

	png, err := whatsapp.QRPNG(whatsapp.DeepLink(rec.Phone, ""), size)
	if err != nil {
		h.app.Logger.Printf("QR generation failed for %s: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// fillDefaults stamps the fields the page normally provides when they are
// absent from the payload.
func (h *Handlers) fillDefaults(e *Enquiry) {
	if e.SourceBranch == "" {
		e.SourceBranch = branch.DetectSource("", e.PageURL)
	}
	if e.Timestamp == "" {
		e.Timestamp = NowIST()
	}
}
