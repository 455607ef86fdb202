package changeset

import (
	"strings"

	"github.com/SocioProphet/zenflows/internal/pkg/errs"
)

// Changeset accumulates per-field validation outcomes for a set of proposed
// changes. The whole set is accepted or rejected as a unit: callers apply
// changes only when Err() returns nil.
//
// Validators are pure: they inspect the proposed value and record a field
// error, nothing else. Pointer-taking validators treat nil as "field not part
// of this changeset" so the same helpers serve partial updates.
type Changeset struct {
	fields []errs.FieldError
}

func New() *Changeset {
	return &Changeset{}
}

func (c *Changeset) AddError(field, message string) *Changeset {
	c.fields = append(c.fields, errs.FieldError{Field: field, Message: message})
	return c
}

// NonEmpty rejects a required text value that is empty or blank.
func (c *Changeset) NonEmpty(field, value string) *Changeset {
	if strings.TrimSpace(value) == "" {
		c.AddError(field, "can't be blank")
	}
	return c
}

// NonEmptyPtr validates a proposed change to a required text field, skipping
// fields absent from the changeset.
func (c *Changeset) NonEmptyPtr(field string, value *string) *Changeset {
	if value == nil {
		return c
	}
	return c.NonEmpty(field, *value)
}

// NonNegative rejects a proposed numeric value below zero.
func (c *Changeset) NonNegative(field string, value *float64) *Changeset {
	if value != nil && *value < 0 {
		c.AddError(field, "must be greater than or equal to zero")
	}
	return c
}

// OneOf rejects a proposed value outside the allowed set.
func (c *Changeset) OneOf(field string, value *string, allowed ...string) *Changeset {
	if value == nil {
		return c
	}
	for _, a := range allowed {
		if *value == a {
			return c
		}
	}
	c.AddError(field, "is invalid")
	return c
}

// MaxLen rejects a proposed text value longer than n bytes.
func (c *Changeset) MaxLen(field string, value *string, n int) *Changeset {
	if value != nil && len(*value) > n {
		c.AddError(field, "is too long")
	}
	return c
}

// Valid reports whether no validator rejected its field.
func (c *Changeset) Valid() bool {
	return len(c.fields) == 0
}

// Err returns the accumulated validation error, or nil when the changeset is
// valid.
func (c *Changeset) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return errs.Validation(c.fields...)
}
