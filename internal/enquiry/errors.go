package enquiry

// ValidationError is a rejected form field. The message is the inline text
// shown next to the submit control.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingName  = &ValidationError{Field: "parentName", Message: "Please enter your name."}
	ErrMissingPhone = &ValidationError{Field: "phone", Message: "Please enter your mobile number."}
	ErrInvalidPhone = &ValidationError{Field: "phone", Message: "Please enter a valid mobile number."}
)

// IsValidationError reports whether err is a form validation rejection.
func IsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	verr, ok := err.(*ValidationError)
	return verr, ok
}
