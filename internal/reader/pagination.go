// Package reader implements text pagination and ephemeral reading sessions.
package reader

import "strings"

// Pagination splits a book text into fixed-size pages of whole lines.
// The last page holds whatever remains and may be shorter than a full window.
type Pagination struct {
	lines   []string
	perPage int
}

// Paginate splits text into pages of linesPerPage lines each.
// linesPerPage values below 1 are treated as 1.
func Paginate(text string, linesPerPage int) *Pagination {
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	return &Pagination{lines: lines, perPage: linesPerPage}
}

// LineCount returns the total number of lines in the text.
func (p *Pagination) LineCount() int {
	return len(p.lines)
}

// TotalPages returns ceil(lineCount / linesPerPage), minimum 1.
// An empty text still renders as a single blank page.
func (p *Pagination) TotalPages() int {
	if len(p.lines) == 0 {
		return 1
	}
	return (len(p.lines) + p.perPage - 1) / p.perPage
}

// LastPage returns the index of the final page.
func (p *Pagination) LastPage() int {
	return p.TotalPages() - 1
}

// Clamp constrains a page index to [0, LastPage].
func (p *Pagination) Clamp(pageIndex int) int {
	if pageIndex < 0 {
		return 0
	}
	if last := p.LastPage(); pageIndex > last {
		return last
	}
	return pageIndex
}

// Page returns the window of lines for the given page index, clamped.
func (p *Pagination) Page(pageIndex int) []string {
	pageIndex = p.Clamp(pageIndex)
	start := pageIndex * p.perPage
	if start >= len(p.lines) {
		return []string{}
	}
	end := start + p.perPage
	if end > len(p.lines) {
		end = len(p.lines)
	}
	return p.lines[start:end]
}

// Line returns a single line addressed by page and offset within the page.
func (p *Pagination) Line(pageIndex, lineIndex int) (string, bool) {
	page := p.Page(pageIndex)
	if lineIndex < 0 || lineIndex >= len(page) {
		return "", false
	}
	return page[lineIndex], true
}
