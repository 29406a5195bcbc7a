package validator

// Validator collects field errors keyed by field name
type Validator struct {
	Errors map[string]string
}

// New returns a Validator with no errors
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for key unless key already has an error
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check records message for key when ok is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// ValidationError is the payload sent to clients when a request fails validation
type ValidationError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps collected field errors with a summary message
func NewValidationError(message string, errors map[string]string) *ValidationError {
	return &ValidationError{Message: message, Errors: errors}
}
