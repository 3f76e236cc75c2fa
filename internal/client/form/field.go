package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one editable property of T.
type Field[T any] struct {
	Name     string
	Label    string
	Required bool
	// Options, when set, restricts the accepted values.
	Options []string
	Get     func(T) string
	// Set parses raw and stores it in the draft.
	Set func(d *T, raw string) error
	// Missing reports an unset required value; nil means Get returned blank.
	Missing func(T) bool
}

func (f Field[T]) missing(d T) bool {
	if f.Missing != nil {
		return f.Missing(d)
	}
	return strings.TrimSpace(f.Get(d)) == ""
}

func (f Field[T]) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Text is a free-form string field.
func Text[T any](name, label string, required bool, get func(T) string, set func(*T, string)) Field[T] {
	return Field[T]{
		Name:     name,
		Label:    label,
		Required: required,
		Get:      get,
		Set: func(d *T, raw string) error {
			set(d, strings.TrimSpace(raw))
			return nil
		},
	}
}

// Choice is a string field limited to options, compared case-insensitively
// and stored as written in options.
func Choice[T any](name, label string, required bool, options []string, get func(T) string, set func(*T, string)) Field[T] {
	f := Text(name, label, required, get, set)
	f.Options = options
	f.Set = func(d *T, raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			set(d, "")
			return nil
		}
		for _, o := range options {
			if strings.EqualFold(o, raw) {
				set(d, o)
				return nil
			}
		}
		return &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("%s must be one of %s.", label, strings.Join(options, ", ")),
		}
	}
	return f
}

// Int is a whole-number field; zero counts as missing when required.
func Int[T any](name, label string, required bool, get func(T) int, set func(*T, int)) Field[T] {
	return Field[T]{
		Name:     name,
		Label:    label,
		Required: required,
		Get:      func(d T) string { return strconv.Itoa(get(d)) },
		Set: func(d *T, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				set(d, 0)
				return nil
			}
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return &ValidationError{Field: name, Message: label + " must be a non-negative whole number."}
			}
			set(d, n)
			return nil
		},
		Missing: func(d T) bool { return get(d) == 0 },
	}
}

// Decimal keeps the value as a string but only accepts positive numbers.
func Decimal[T any](name, label string, required bool, get func(T) string, set func(*T, string)) Field[T] {
	f := Text(name, label, required, get, set)
	f.Set = func(d *T, raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			set(d, "")
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return &ValidationError{Field: name, Message: label + " must be a positive number."}
		}
		set(d, raw)
		return nil
	}
	return f
}

// Bool accepts y/n, yes/no, true/false, 1/0.
func Bool[T any](name, label string, get func(T) bool, set func(*T, bool)) Field[T] {
	return Field[T]{
		Name:  name,
		Label: label,
		Get:   func(d T) string { return strconv.FormatBool(get(d)) },
		Set: func(d *T, raw string) error {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "y", "yes", "true", "1":
				set(d, true)
			case "n", "no", "false", "0", "":
				set(d, false)
			default:
				return &ValidationError{Field: name, Message: label + " must be yes or no."}
			}
			return nil
		},
	}
}
