package catalog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, created_at, title, author, level, text, from_server`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var (
		b          domain.Book
		createdAt  string
		fromServer int
	)

	err := scanner.Scan(
		&b.ID,
		&createdAt,
		&b.Title,
		&b.Author,
		&b.Level,
		&b.Text,
		&fromServer,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	b.FromServer = fromServer != 0

	return &b, nil
}

// InsertBook stores a new book and fills in its assigned ID.
// Returns errors.ErrAlreadyExists when a book with the same title exists.
func (s *Store) InsertBook(ctx context.Context, book *domain.Book) error {
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO books (created_at, title, author, level, text, from_server)
		VALUES (?, ?, ?, ?, ?, ?)`,
		formatTime(book.CreatedAt),
		book.Title,
		book.Author,
		book.Level,
		book.Text,
		boolToInt(book.FromServer),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return errors.AlreadyExistsf("book %q already in catalog", book.Title)
		}
		return errors.Wrap(err, errors.CodeInternal, "insert book")
	}

	book.ID, err = res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "read inserted book id")
	}
	return nil
}

// GetBook retrieves a book by ID, including its full text.
// Returns errors.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("book %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book")
	}
	return b, nil
}

// GetBookByTitle retrieves a book by its title, including its full text.
// Returns errors.ErrNotFound if the book does not exist.
func (s *Store) GetBookByTitle(ctx context.Context, title string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE title = ?`, title)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("book %q not found", title)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book by title")
	}
	return b, nil
}

// ListBooks returns every catalog book ordered by insertion, texts omitted.
// The listing is shown on shelves, so loading full texts here would be waste.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.queryBooks(ctx,
		`SELECT id, created_at, title, author, level, '' AS text, from_server
		 FROM books ORDER BY id`)
}

// ListBooksByOrigin returns catalog books filtered on origin, texts omitted.
// fromServer true selects catalog downloads, false selects user imports.
func (s *Store) ListBooksByOrigin(ctx context.Context, fromServer bool) ([]*domain.Book, error) {
	return s.queryBooks(ctx,
		`SELECT id, created_at, title, author, level, '' AS text, from_server
		 FROM books WHERE from_server = ? ORDER BY id`, boolToInt(fromServer))
}

func (s *Store) queryBooks(ctx context.Context, query string, args ...any) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list books")
	}
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "scan book")
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "iterate books")
	}
	return books, nil
}

// BookExists reports whether a book with the title is already in the catalog.
func (s *Store) BookExists(ctx context.Context, title string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books WHERE title = ?`, title).Scan(&n)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "check book exists")
	}
	return n > 0, nil
}

// CountBooks returns the number of books in the catalog.
func (s *Store) CountBooks(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "count books")
	}
	return n, nil
}

// DeleteBook removes a book by ID.
// Returns errors.ErrNotFound if the book does not exist.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete book")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete book")
	}
	if affected == 0 {
		return errors.NotFoundf("book %d not found", id)
	}
	return nil
}
