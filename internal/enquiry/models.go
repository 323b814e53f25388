package enquiry

import "strings"

// Sentinel form values that mean "no preference" and are treated as absent.
const (
	SentinelEitherBranch = "Either branch"
	SentinelAnyTime      = "Any time"
)

// Form types reported by the pages.
const (
	FormTypeQuickEnquiry = "Quick Enquiry"
	FormTypeContactForm  = "Contact Form"
)

const countryCallingCode = "+91"

// Enquiry is one form submission. Built fresh per request, never persisted.
type Enquiry struct {
	ParentName      string `json:"parentName"`
	Phone           string `json:"phone"`
	PreferredBranch string `json:"preferredBranch,omitempty"`
	ChildAge        string `json:"childAge,omitempty"`
	PreferredTime   string `json:"preferredTime,omitempty"`
	Message         string `json:"message,omitempty"`
	FormType        string `json:"formType"`
	SourceBranch    string `json:"sourceBranch"`
	PageURL         string `json:"pageUrl"`
	Timestamp       string `json:"timestamp"`
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone formats a phone number for display. Exactly 10 digits get
// the country calling code; longer numbers without a leading "+" get a bare
// "+"; anything else passes through unchanged.
func NormalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	digits := PhoneDigits(trimmed)
	if len(digits) == 10 {
		return countryCallingCode + " " + digits
	}
	if len(digits) > 10 && !strings.HasPrefix(trimmed, "+") {
		return "+" + digits
	}
	return trimmed
}

// Validate checks the required fields. Name and phone must be present and the
// phone must carry at least 10 digits.
func (e *Enquiry) Validate() error {
	if strings.TrimSpace(e.ParentName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(e.Phone) == "" {
		return ErrMissingPhone
	}
	if len(PhoneDigits(e.Phone)) < 10 {
		return ErrInvalidPhone
	}
	return nil
}

// BranchDisplayName is the branch line shown in outbound messages: the
// preferred branch when one was chosen, else "<source> Branch".
func (e *Enquiry) BranchDisplayName() string {
	if e.PreferredBranch != "" && e.PreferredBranch != SentinelEitherBranch {
		return e.PreferredBranch
	}
	return e.SourceBranch + " Branch"
}
