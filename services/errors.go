package services

import "errors"

// Sentinel errors shared across services. Controllers map them onto
// HTTP statuses: field errors → 400, conflicts → 409, configuration
// errors → 500.
var (
	// ErrSiteSettingsMissing means the SiteSettings singleton row is
	// absent. Fatal to the operation; pricing never defaults it.
	ErrSiteSettingsMissing = errors.New("site settings are not configured")

	// ErrOrderClaimed means another operator holds the order, or the
	// caller's view of it is stale.
	ErrOrderClaimed = errors.New("order no longer available")

	ErrForbidden = errors.New("forbidden")
)

// ValidationError is a field-level rejection. The operation it guards
// makes no state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fieldErr(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
