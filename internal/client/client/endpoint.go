package client

import (
	"fmt"
	"net/url"
	"strings"
)

// Op names an operation for error messages and logs.
type Op string

const (
	OpFetch     Op = "fetch"
	OpCreate    Op = "add"
	OpUpdate    Op = "update"
	OpDelete    Op = "delete"
	OpExport    Op = "export"
	OpImport    Op = "import"
	OpStock     Op = "stock"
	OpAction    Op = "action"
	OpMarkRead  Op = "mark-read"
	OpMarkAll   Op = "mark-all-read"
	OpAnalytics Op = "analytics"
	OpGenerate  Op = "generate-link"
	OpLogin     Op = "login"
	OpIdentify  Op = "me"
	OpMetrics   Op = "metrics"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Endpoint describes one backend collection.
type Endpoint struct {
	// Name is used in export filenames and metrics labels.
	Name string
	// Path is the collection path with trailing slash, e.g. /api/orders/.
	Path     string
	Plural   string
	Singular string
	// FilterKeys are the accepted query keys in the order they are sent.
	FilterKeys []string
	// Messages overrides the default failure banner per operation.
	Messages map[Op]string
}

// ItemPath is the path of one record.
func (e Endpoint) ItemPath(id string) string {
	return e.Path + url.PathEscape(id) + "/"
}

// HasFilter reports whether key is one of the endpoint's filters.
func (e Endpoint) HasFilter(key string) bool {
	for _, k := range e.FilterKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Message is the banner for a failed op. arg carries the format for exports
// and imports.
func (e Endpoint) Message(op Op, arg string) string {
	if m, ok := e.Messages[op]; ok {
		return m
	}
	switch op {
	case OpFetch:
		return fmt.Sprintf("Failed to fetch %s.", e.Plural)
	case OpCreate, OpUpdate, OpDelete:
		return fmt.Sprintf("Failed to %s %s.", op, e.Singular)
	case OpExport, OpImport:
		return fmt.Sprintf("Failed to %s %s.", op, strings.ToUpper(arg))
	case OpAnalytics:
		return "Failed to fetch analytics."
	}
	return fmt.Sprintf("Failed to %s %s.", strings.ReplaceAll(string(op), "-", " "), e.Singular)
}

// Filters is the filter state of a page: field name to current value.
type Filters map[string]string

// Clone returns an independent copy.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Active reports whether any filter has a non-blank value.
func (f Filters) Active() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Query renders the non-empty values of keys, in key order, as a query
// string with a leading '?', or "" when nothing is set. Values are
// query-escaped with space as %20 rather than +.
func Query(keys []string, f Filters) string {
	var b strings.Builder
	for _, k := range keys {
		v := f[k]
		if v == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(escape(k))
		b.WriteByte('=')
		b.WriteString(escape(v))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
