package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Enum describes a custom tag that accepts only the listed values (exact, case-sensitive).
type Enum struct {
	Tag     string
	Allowed []string
}

// New returns a validator with one custom tag per enum.
// Values may contain spaces, which the built-in oneof tag cannot express.
func New(enums ...Enum) *validatorv10.Validate {
	v := validatorv10.New()

	// Report fields by their query/json name rather than the Go field name.
	v.RegisterTagNameFunc(fieldName)

	for _, e := range enums {
		allowed := make(map[string]struct{}, len(e.Allowed))
		for _, a := range e.Allowed {
			allowed[a] = struct{}{}
		}
		if err := v.RegisterValidation(e.Tag, func(fl validatorv10.FieldLevel) bool {
			_, ok := allowed[fl.Field().String()]
			return ok
		}); err != nil {
			panic(fmt.Sprintf("register %s: %v", e.Tag, err))
		}
	}

	return v
}

// fieldName prefers the query tag, then the json tag, then the Go name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Error is returned when a request fails binding or validation.
type Error struct {
	// Fields maps the offending field to a message.
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Query parses the query string into out and validates it.
func Query(c *fiber.Ctx, out interface{}, v *validatorv10.Validate) error {
	if err := c.QueryParser(out); err != nil {
		return &Error{Fields: map[string]string{"query": err.Error()}, cause: err}
	}
	return Struct(out, v)
}

// Body parses the JSON body into out and validates it.
func Body(c *fiber.Ctx, out interface{}, v *validatorv10.Validate) error {
	if err := c.BodyParser(out); err != nil {
		return &Error{Fields: map[string]string{"body": "invalid request body"}, cause: err}
	}
	return Struct(out, v)
}

// Struct validates an already populated value.
func Struct(out interface{}, v *validatorv10.Validate) error {
	if err := v.Struct(out); err != nil {
		return &Error{Fields: toMap(err), cause: err}
	}
	return nil
}

func toMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = describe(fe)
		}
		return out
	}
	out["error"] = err.Error()
	return out
}

func describe(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	default:
		return fmt.Sprintf("invalid value %v (%s)", fe.Value(), fe.Tag())
	}
}
