package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation errors, mirroring Laravel's MessageBag.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add appends msg to field's messages.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failing field names, sorted.
func (e *Errors) Fields() []string {
	out := make([]string, 0, len(e.Bag))
	for f := range e.Bag {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Error joins the first message of every field so the bag can travel as an
// error value.
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Bag))
	for _, f := range e.Fields() {
		parts = append(parts, e.First(f))
	}
	return "validation failed: " + strings.Join(parts, " ")
}

// SelfValidator is implemented by payloads with rules struct tags cannot
// express (e.g. "at least one of these fields").
type SelfValidator interface {
	Validate(errs *Errors)
}

// ── Validator ────────────────────────────────────────────────────────────────

// Validator checks `validate:"..."` struct tags and reports failures under the
// field's json name.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Default returns the shared validator.
func Default() *Validator {
	once.Do(func() { instance = New() })
	return instance
}

// New creates a validator that names fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns the error bag, which is empty when s passes.
// A SelfValidator's own rules run after the tag rules.
func (v *Validator) Struct(s any) *Errors {
	errs := &Errors{}

	if err := v.validate.Struct(s); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs.Add("_", err.Error())
			return errs
		}
		for _, fe := range fieldErrs {
			field := fieldPath(fe.Namespace())
			errs.Add(field, message(field, fe.Tag(), fe.Param()))
		}
	}

	if sv, ok := s.(SelfValidator); ok {
		sv.Validate(errs)
	}
	return errs
}

// fieldPath drops the root struct name: "RegisterRequest.goals.primary" → "goals.primary".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(field, tag, param string) string {
	switch tag {
	case "required", "required_with", "required_without":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "url", "http_url":
		return fmt.Sprintf("The %s must be a valid URL.", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("The %s must be a valid UUID.", field)
	case "numeric", "number":
		return fmt.Sprintf("The %s must be a number.", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", field, param)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", field, param)
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", field, param)
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, param)
	case "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
	case "lt":
		return fmt.Sprintf("The %s must be less than %s.", field, param)
	case "lte":
		return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "alpha":
		return fmt.Sprintf("The %s may only contain letters.", field)
	case "alphanum":
		return fmt.Sprintf("The %s may only contain letters and numbers.", field)
	default:
		return fmt.Sprintf("The %s format is invalid.", field)
	}
}
