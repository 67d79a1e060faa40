package ruledoc

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var semanticTypes = []any{TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray, TypeFile}

var errMissingExample = errors.New("required parameters must carry an example value")

// Validate checks that p is well formed: it has a name, its type belongs to
// the semantic vocabulary and a required parameter carries an example.
func (p Parameter) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(semanticTypes...)),
		validation.Field(&p.Value, validation.When(p.Required, validation.By(hasExample))),
	)
}

func hasExample(value any) error {
	if v, ok := value.(Value); ok && v.IsAbsent() {
		return errMissingExample
	}
	return nil
}

// Validate validates every parameter and returns the failures keyed by name.
func (ps Parameters) Validate() error {
	errs := ValidationErrors{}
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			errs[p.Name] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
