// Package main dumps the reader-state blobs from a Badger database.
//
// Usage:
//
//	DB_PATH=~/ReadMate/db go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/readmateapp/readmate-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/ReadMate/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Reader State Inspection ===")
	fmt.Println()

	var progress domain.ProgressMap
	if readBlob(db, "bookProgress", &progress) {
		fmt.Printf("Progress (%d books):\n", len(progress))
		for title, p := range progress {
			fmt.Printf("  %-40s %3d%% (page %d)\n", title, p.Percent, p.PageIndex)
		}
	} else {
		fmt.Println("Progress: empty")
	}
	fmt.Println()

	var glossary domain.Glossary
	if readBlob(db, "dictionary", &glossary) {
		fmt.Printf("Glossary (%d entries):\n", len(glossary))
		for _, entry := range glossary {
			fmt.Printf("  %-20s %s\n", entry.Word, entry.Translation)
		}
	} else {
		fmt.Println("Glossary: empty")
	}
	fmt.Println()

	var favorites domain.FavoriteList
	if readBlob(db, "favorites", &favorites) {
		fmt.Printf("Favorites (%d):\n", len(favorites))
		for _, title := range favorites {
			fmt.Printf("  %s\n", title)
		}
	} else {
		fmt.Println("Favorites: empty")
	}
	fmt.Println()

	var darkMode bool
	readBlob(db, "darkMode", &darkMode)
	var lang string
	readBlob(db, "nativeLanguage", &lang)
	fmt.Printf("Preferences: dark_mode=%v native_language=%q\n", darkMode, lang)
}

// readBlob loads one JSON blob. Returns false when the key is absent.
func readBlob(db *badger.DB, key string, dest any) bool {
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			log.Printf("read %s: %v", key, err)
		}
		return false
	}
	return true
}
