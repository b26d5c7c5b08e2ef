// Package main provides a tool to seed the catalog with sample books.
//
// This fills a fresh install with a handful of public-domain texts and
// optionally a starter glossary, enough to exercise the reader and the
// vocabulary quiz without a remote catalog.
//
// Usage:
//
//	CATALOG_PATH=~/ReadMate/catalog.db go run ./cmd/seed
//	CATALOG_PATH=~/ReadMate/catalog.db go run ./cmd/seed --glossary  # Also seed quiz words
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
)

var seedGlossary = flag.Bool("glossary", false, "Also seed a starter glossary for the quiz")

func main() {
	flag.Parse()

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = os.ExpandEnv("$HOME/ReadMate/catalog.db")
	}

	fmt.Printf("Opening catalog at: %s\n", catalogPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := catalog.Open(catalogPath, logger)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	ctx := context.Background()

	added := 0
	for _, book := range sampleBooks() {
		if err := cat.InsertBook(ctx, book); err != nil {
			if errors.Is(err, errors.ErrAlreadyExists) {
				fmt.Printf("  skip %q (already present)\n", book.Title)
				continue
			}
			log.Fatalf("Failed to insert %q: %v", book.Title, err)
		}
		fmt.Printf("  added %q (%s, %s)\n", book.Title, book.Author, book.Level)
		added++
	}
	fmt.Printf("Seeded %d books\n", added)

	if *seedGlossary {
		seedStarterGlossary(ctx, filepath.Dir(catalogPath))
	}
}

func seedStarterGlossary(ctx context.Context, basePath string) {
	dbPath := filepath.Join(basePath, "db")
	kv, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open reading-state store: %v", err)
	}
	defer kv.Close()

	words := map[string]string{
		"night":    "noche",
		"day":      "dia",
		"sea":      "mar",
		"book":     "libro",
		"house":    "casa",
		"fire":     "fuego",
		"water":    "agua",
		"friend":   "amigo",
		"morning":  "manana",
		"darkness": "oscuridad",
	}

	for word, meaning := range words {
		if _, err := kv.AddWord(ctx, word, meaning); err != nil {
			log.Fatalf("Failed to add %q: %v", word, err)
		}
	}
	fmt.Printf("Seeded %d glossary words\n", len(words))
}

func sampleBooks() []*domain.Book {
	return []*domain.Book{
		{
			Title:  "The Tale of Peter Rabbit",
			Author: "Beatrix Potter",
			Level:  "A2",
			Text: "Once upon a time there were four little Rabbits,\n" +
				"and their names were Flopsy, Mopsy, Cotton-tail, and Peter.\n" +
				"They lived with their Mother in a sand-bank,\n" +
				"underneath the root of a very big fir-tree.",
		},
		{
			Title:  "The Gift of the Magi",
			Author: "O. Henry",
			Level:  "B1",
			Text: "One dollar and eighty-seven cents.\n" +
				"That was all.\n" +
				"And sixty cents of it was in pennies.\n" +
				"Pennies saved one and two at a time.",
		},
		{
			Title:  "The Open Boat",
			Author: "Stephen Crane",
			Level:  "B2",
			Text: "None of them knew the color of the sky.\n" +
				"Their eyes glanced level, and were fastened upon the waves\n" +
				"that swept toward them.",
		},
	}
}
