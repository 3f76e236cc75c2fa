// Package resources describes each IPMS resource for the generic table and
// form: which columns to show, which fields can be edited, and how values
// map to tones. Everything here is derived at render time from the rows
// the backend returned.
package resources
