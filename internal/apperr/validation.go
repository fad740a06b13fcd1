package apperr

import (
	"errors"

	"go.uber.org/multierr"
)

const InvalidDataMessage = "invalid data"

// Validator collects every violated rule before failing.
type Validator struct {
	err error
}

func (v *Validator) Check(ok bool, field, code, message string) {
	if ok {
		return
	}
	v.err = multierr.Append(v.err, &FieldError{Field: field, Message: message, Code: code})
}

func (v *Validator) Valid() bool {
	return v.err == nil
}

// Err returns nil, or an InvalidInput error carrying all field errors.
func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}

	var fields []FieldError
	for _, e := range multierr.Errors(v.err) {
		var fe *FieldError
		if errors.As(e, &fe) {
			fields = append(fields, *fe)
		}
	}

	return &Error{
		Kind:    KindInvalidInput,
		Message: InvalidDataMessage,
		Fields:  fields,
		cause:   v.err,
	}
}
