package enquiry

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rockridgeglobal/enquiry-relay/internal/branch"
)

const textDivider = "━━━━━━━━━━━━━━━━━━━━"

// messageView carries the resolved fields shared by the text and HTML
// renderings, so both apply identical inclusion rules.
type messageView struct {
	ParentName   string
	Phone        string // normalized for display
	PhoneRaw     string
	PhoneDigits  string
	BranchName   string
	ChildAge     string
	ShowChildAge bool
	Time         string
	ShowTime     bool
	Message      string
	ShowMessage  bool
	Branch       branch.Record
	FormType     string
	SourceBranch string
	PageURL      string
	Timestamp    string
}

func buildMessageView(e *Enquiry, rec branch.Record) messageView {
	return messageView{
		ParentName:   strings.TrimSpace(e.ParentName),
		Phone:        NormalizePhone(e.Phone),
		PhoneRaw:     strings.TrimSpace(e.Phone),
		PhoneDigits:  PhoneDigits(e.Phone),
		BranchName:   e.BranchDisplayName(),
		ChildAge:     e.ChildAge,
		ShowChildAge: e.ChildAge != "",
		Time:         e.PreferredTime,
		ShowTime:     e.PreferredTime != "" && e.PreferredTime != SentinelAnyTime,
		Message:      strings.TrimSpace(e.Message),
		ShowMessage:  strings.TrimSpace(e.Message) != "",
		Branch:       rec,
		FormType:     e.FormType,
		SourceBranch: e.SourceBranch,
		PageURL:      e.PageURL,
		Timestamp:    e.Timestamp,
	}
}

// FormatText renders the plain-text message used for WhatsApp deep links and
// email text bodies. Field order is fixed; optional fields are omitted when
// absent or equal to their sentinel.
func FormatText(e *Enquiry, rec branch.Record) string {
	v := buildMessageView(e, rec)

	var b strings.Builder
	b.WriteString("*New Enquiry - Rockridge Global Preschool*\n\n")
	b.WriteString(textDivider + "\n\n")
	fmt.Fprintf(&b, "*Parent's Name:* %s\n\n", v.ParentName)
	fmt.Fprintf(&b, "*Mobile Number:* %s\n\n", v.Phone)
	fmt.Fprintf(&b, "*Preferred Branch:* %s\n\n", v.BranchName)

	if v.ShowChildAge {
		fmt.Fprintf(&b, "*Child's Age:* %s\n\n", v.ChildAge)
	}
	if v.ShowTime {
		fmt.Fprintf(&b, "*Preferred Contact Time:* %s\n\n", v.Time)
	}
	if v.ShowMessage {
		fmt.Fprintf(&b, "*Message:* %s\n\n", v.Message)
	}

	b.WriteString(textDivider + "\n\n")
	b.WriteString("*Branch Details:*\n")
	fmt.Fprintf(&b, "%s\n", v.BranchName)
	fmt.Fprintf(&b, "Phone: %s\n", v.Branch.DisplayPhone)
	fmt.Fprintf(&b, "Address: %s\n\n", v.Branch.Address)
	fmt.Fprintf(&b, "Submitted: %s", v.Timestamp)

	return b.String()
}

// Subject is the email subject line for an enquiry.
func Subject(e *Enquiry) string {
	return fmt.Sprintf("🎓 New Enquiry: %s - %s", strings.TrimSpace(e.ParentName), e.BranchDisplayName())
}

var emailTemplate = template.Must(template.New("enquiry-email").Parse(emailTemplateHTML))

// FormatHTML renders the styled email body. Inclusion rules match FormatText;
// the footer box additionally carries form type, source page and page URL.
func FormatHTML(e *Enquiry, rec branch.Record) (string, error) {
	v := buildMessageView(e, rec)

	data := struct {
		messageView
		MessageHTML template.HTML
	}{messageView: v}
	if v.ShowMessage {
		escaped := template.HTMLEscapeString(v.Message)
		data.MessageHTML = template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	}

	var b strings.Builder
	if err := emailTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render email body: %w", err)
	}
	return b.String(), nil
}

const emailTemplateHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Enquiry - Rockridge Global Preschool</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 600px;
      margin: 0 auto;
      padding: 20px;
      background-color: #f5f5f5;
    }
    .email-container {
      background-color: #ffffff;
      border-radius: 12px;
      overflow: hidden;
      box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
    }
    .email-header {
      background: linear-gradient(135deg, #3b82f6 0%, #1e40af 100%);
      color: white;
      padding: 30px 20px;
      text-align: center;
    }
    .email-header h1 {
      margin: 0;
      font-size: 24px;
      font-weight: 700;
    }
    .email-header p {
      margin: 8px 0 0 0;
      font-size: 14px;
      opacity: 0.9;
    }
    .email-body {
      padding: 30px 20px;
    }
    .info-section {
      margin-bottom: 25px;
    }
    .info-label {
      font-size: 12px;
      text-transform: uppercase;
      letter-spacing: 0.5px;
      color: #6b7280;
      font-weight: 600;
      margin-bottom: 5px;
    }
    .info-value {
      font-size: 16px;
      color: #1f2937;
      font-weight: 500;
      margin-bottom: 15px;
    }
    .info-value a {
      color: #3b82f6;
      text-decoration: none;
    }
    .divider {
      height: 1px;
      background: linear-gradient(to right, transparent, #e5e7eb, transparent);
      margin: 25px 0;
    }
    .message-box {
      background-color: #f9fafb;
      border-left: 4px solid #3b82f6;
      padding: 15px;
      border-radius: 4px;
      margin: 20px 0;
    }
    .message-box p {
      margin: 0;
      color: #374151;
      font-size: 14px;
      line-height: 1.6;
    }
    .branch-info {
      background: linear-gradient(135deg, #fef3c7 0%, #fde68a 100%);
      padding: 20px;
      border-radius: 8px;
      margin-top: 20px;
    }
    .branch-info h3 {
      margin: 0 0 10px 0;
      color: #92400e;
      font-size: 16px;
    }
    .branch-info p {
      margin: 5px 0;
      color: #78350f;
      font-size: 14px;
    }
    .email-footer {
      background-color: #f9fafb;
      padding: 20px;
      text-align: center;
      border-top: 1px solid #e5e7eb;
    }
    .email-footer p {
      margin: 5px 0;
      font-size: 12px;
      color: #6b7280;
    }
    .badge {
      display: inline-block;
      background-color: #dbeafe;
      color: #1e40af;
      padding: 4px 12px;
      border-radius: 12px;
      font-size: 12px;
      font-weight: 600;
      margin-top: 5px;
    }
  </style>
</head>
<body>
  <div class="email-container">
    <div class="email-header">
      <h1>🎓 New Enquiry Received</h1>
      <p>Rockridge Global Preschool</p>
    </div>

    <div class="email-body">
      <div class="info-section">
        <div class="info-label">Parent's Name</div>
        <div class="info-value">{{.ParentName}}</div>
      </div>

      <div class="info-section">
        <div class="info-label">Mobile Number</div>
        <div class="info-value">
          <a href="tel:{{.PhoneRaw}}">{{.Phone}}</a>
          <br>
          <a href="https://wa.me/{{.PhoneDigits}}" style="font-size: 14px;">
            💬 WhatsApp
          </a>
        </div>
      </div>

      <div class="divider"></div>

      <div class="info-section">
        <div class="info-label">Preferred Branch</div>
        <div class="info-value">
          {{.BranchName}}
          <span class="badge">{{.SourceBranch}} Page</span>
        </div>
      </div>

      {{if .ShowChildAge}}
      <div class="info-section">
        <div class="info-label">Child's Age</div>
        <div class="info-value">{{.ChildAge}}</div>
      </div>
      {{end}}

      {{if .ShowTime}}
      <div class="info-section">
        <div class="info-label">Preferred Contact Time</div>
        <div class="info-value">{{.Time}}</div>
      </div>
      {{end}}

      {{if .ShowMessage}}
      <div class="divider"></div>
      <div class="info-section">
        <div class="info-label">Message</div>
        <div class="message-box">
          <p>{{.MessageHTML}}</p>
        </div>
      </div>
      {{end}}

      <div class="divider"></div>

      <div class="branch-info">
        <h3>📍 {{.BranchName}}</h3>
        <p><strong>Form Type:</strong> {{.FormType}}</p>
        <p><strong>Submitted:</strong> {{.Timestamp}}</p>
        <p><strong>Page URL:</strong> <a href="{{.PageURL}}" style="color: #92400e;">{{.PageURL}}</a></p>
      </div>
    </div>

    <div class="email-footer">
      <p><strong>Rockridge Global Preschool</strong></p>
      <p>This is an automated email from your website contact form.</p>
      <p>Please respond to the parent at {{.Phone}}</p>
    </div>
  </div>
</body>
</html>
`
