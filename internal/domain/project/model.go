package project

import (
	"strings"
	"unicode"
)

// Project represents a named unit of time tracking with its own interval log.
type Project struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details,omitempty"`
	TableName string `json:"table_name"`
}

// TableName derives the log-table identifier for a project title: spaces
// become underscores, anything that is not a letter, digit or underscore is
// dropped, and the result carries a fixed namespace prefix. The mapping is
// pure and stable across runs; the same title always yields the same
// identifier. Distinct titles can collide (e.g. "Alpha!" and "Alpha?"), which
// the registry's unique table_name constraint rejects at creation.
func TableName(title string) string {
	var b strings.Builder
	b.WriteString("project_")
	for _, r := range strings.ReplaceAll(title, " ", "_") {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
