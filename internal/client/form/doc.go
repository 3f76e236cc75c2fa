// Package form holds the add/edit dialog shared by every resource page.
//
// A Spec lists the editable fields of a resource. A Dialog owns one draft at
// a time: Open starts it (from a row for edit, from the spec's empty value
// for create), Set edits one field, Submit validates the required fields
// locally and hands the draft to a save function. Nothing reaches the
// network when validation fails.
package form
