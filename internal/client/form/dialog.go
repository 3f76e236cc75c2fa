package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ipms/internal/common"
)

// Spec describes the editable fields of one resource.
type Spec[T any] struct {
	Fields []Field[T]
	// RequiredMessage is shown when any required field is blank.
	RequiredMessage string
	// Empty returns the draft for create; nil means the zero T.
	Empty func() T
}

func (s Spec[T]) Field(name string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Validate returns a *ValidationError listing the blank required fields.
func (s Spec[T]) Validate(d T) error {
	var missing []string
	for _, f := range s.Fields {
		if f.Required && f.missing(d) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing, Message: s.RequiredMessage}
}

func (s Spec[T]) empty() T {
	if s.Empty != nil {
		return s.Empty()
	}
	var zero T
	return zero
}

// SaveFunc persists the draft. editing is false for create.
type SaveFunc[T any] func(ctx context.Context, draft T, editing bool) error

// Dialog holds at most one open draft.
type Dialog[T any] struct {
	spec Spec[T]

	mu      sync.Mutex
	open    bool
	editing bool
	draft   T
	err     error
}

func NewDialog[T any](spec Spec[T]) *Dialog[T] {
	return &Dialog[T]{spec: spec}
}

func (d *Dialog[T]) Spec() Spec[T] { return d.spec }

// Open starts a new draft, replacing any previous one. A nil initial opens
// for create; otherwise the draft is a copy of *initial.
func (d *Dialog[T]) Open(initial *T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	d.err = nil
	if initial != nil {
		d.draft = *initial
		d.editing = true
		return
	}
	d.draft = d.spec.empty()
	d.editing = false
}

// Set parses value into the named field of the draft.
func (d *Dialog[T]) Set(name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return common.ErrDialogClosed
	}
	f, ok := d.spec.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	return f.Set(&d.draft, value)
}

// Submit validates the draft and calls save. On success the dialog closes
// and the draft is dropped; on failure it stays open and Err returns the
// failure until the next Submit, Open or Cancel.
func (d *Dialog[T]) Submit(ctx context.Context, save SaveFunc[T]) error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return common.ErrDialogClosed
	}
	draft, editing := d.draft, d.editing
	d.mu.Unlock()

	err := d.spec.Validate(draft)
	if err == nil {
		err = save(ctx, draft, editing)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.err = err
		return err
	}
	d.reset()
	return nil
}

// Cancel closes the dialog and discards the draft.
func (d *Dialog[T]) Cancel() {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
}

func (d *Dialog[T]) reset() {
	var zero T
	d.open = false
	d.editing = false
	d.draft = zero
	d.err = nil
}

func (d *Dialog[T]) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *Dialog[T]) Editing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editing
}

func (d *Dialog[T]) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Draft returns a copy of the draft; ok is false when the dialog is closed.
func (d *Dialog[T]) Draft() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft, d.open
}
