// Package table is the searchable resource table shared by every page: a
// Controller that owns filter state and fetches (debounced on edits,
// immediate on clear and refresh, full refetch after mutations) and a View
// that renders whatever state the controller last produced.
package table
