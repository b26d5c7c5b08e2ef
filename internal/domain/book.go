// Package domain contains the core business entities for the ReadMate reading companion.
package domain

import "time"

// Levels are the CEFR difficulty ratings a book can carry.
var Levels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// Book is a fully downloaded book in the local catalog.
// FromServer distinguishes catalog downloads from user-imported books.
type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Level      string    `json:"level"`
	Text       string    `json:"text,omitempty"`
	FromServer bool      `json:"from_server"`
	CreatedAt  time.Time `json:"created_at"`
}

// CatalogBook is a book listed by the remote catalog service.
// Text is only populated after an explicit full-text fetch.
type CatalogBook struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Level  string `json:"level"`
	Text   string `json:"text,omitempty"`
}

// ValidLevel reports whether level is a known CEFR rating.
func ValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}
