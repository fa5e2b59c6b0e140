package domain

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError carries the failing fields and unwraps to the sentinel that selects the status code.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		names = append(names, f.Field)
	}

	return fmt.Sprintf("%s: %s", v.Err.Error(), strings.Join(names, ", "))
}

func (v *ValidationError) Unwrap() error {
	return v.Err
}

type fieldChecker struct {
	fields []FieldError
}

func (c *fieldChecker) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fields = append(c.fields, FieldError{Field: field, Tag: "required"})
	}
}

func (c *fieldChecker) fail(field, tag string) {
	c.fields = append(c.fields, FieldError{Field: field, Tag: tag})
}

func (c *fieldChecker) result(sentinel error) error {
	if len(c.fields) == 0 {
		return nil
	}

	return &ValidationError{Err: sentinel, Fields: c.fields}
}
