package common

// ValidationError carries the exact message returned to the client. The API
// contract fixes whole-request messages (e.g. "title, author and/or url
// missing") rather than per-field ones, so a single string is kept.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type Validator struct {
	errors []string
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

func (v *Validator) Check(ok bool, message string) {
	if !ok {
		v.errors = append(v.errors, message)
	}
}

// ValidationError returns the first recorded failure. Checks are registered in
// contract order, so the first failure is the one the client sees.
func (v *Validator) ValidationError() error {
	return ValidationError{Message: v.errors[0]}
}
