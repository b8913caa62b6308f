// Package textdoc models a statement as an ordered sequence of text pages
// and provides extractors that build one from a PDF or plain-text file.
package textdoc

import "strings"

// Document is the page-structured text of one statement.
type Document struct {
	pages []string
}

// Line is a single trimmed line of statement text tagged with the index of
// the page it came from. Page boundaries matter: some layouts reset their
// section state on a new page.
type Line struct {
	Page int
	Text string
}

// NewDocument builds a Document from raw page texts.
func NewDocument(pages []string) *Document {
	return &Document{pages: pages}
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Lines returns every non-empty line of the document in reading order,
// trimmed of surrounding whitespace.
func (d *Document) Lines() []Line {
	var lines []Line
	for page, text := range d.pages {
		for _, raw := range strings.Split(text, "\n") {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			lines = append(lines, Line{Page: page, Text: trimmed})
		}
	}
	return lines
}
