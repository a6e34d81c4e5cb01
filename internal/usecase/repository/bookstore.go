package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/pkg/logger"
)

const bookFieldCount = 4

var _ BooksRepository = (*bookStore)(nil)

type bookStore struct {
	logger *zap.Logger
	path   string
	books  []entity.Book
}

func NewBookStore(logger *zap.Logger, path string) (*bookStore, error) {
	s := &bookStore{
		logger: logger,
		path:   path,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *bookStore) load() error {
	file, err := os.Open(s.path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("can not open book store %s: %w", s.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())

		if text == "" {
			continue
		}

		book, ok := parseBookRecord(text)

		if !ok {
			logger.MakeWarn(s.logger, "skipping malformed book record",
				zap.String("file", s.path),
				zap.Int("line", line))
			continue
		}

		s.books = append(s.books, book)
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("can not read book store %s: %w", s.path, err)
	}

	return nil
}

func parseBookRecord(line string) (entity.Book, bool) {
	parts := strings.Split(line, fieldDelimiter)

	if len(parts) != bookFieldCount {
		return entity.Book{}, false
	}

	copies, err := strconv.Atoi(parts[3])

	if err != nil || copies < 0 {
		return entity.Book{}, false
	}

	return entity.Book{
		ID:              parts[0],
		Title:           parts[1],
		Author:          parts[2],
		AvailableCopies: copies,
	}, true
}

func (s *bookStore) save() error {
	records := lo.Map(s.books, func(book entity.Book, _ int) string {
		fields := []string{book.ID, book.Title, book.Author, strconv.Itoa(book.AvailableCopies)}
		return strings.Join(fields, fieldDelimiter) + "\n"
	})

	if err := os.WriteFile(s.path, []byte(strings.Join(records, "")), 0644); err != nil {
		return fmt.Errorf("can not save book store %s: %w", s.path, err)
	}

	return nil
}

func (s *bookStore) AllBooks(_ context.Context) []entity.Book {
	return slices.Clone(s.books)
}

func (s *bookStore) FindBookByTitle(_ context.Context, title string) (entity.Book, error) {
	book, ok := lo.Find(s.books, func(b entity.Book) bool {
		return strings.EqualFold(b.Title, title)
	})

	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}

	return book, nil
}

func (s *bookStore) AddBook(_ context.Context, book entity.Book) error {
	s.books = append(s.books, book)
	return s.save()
}

func (s *bookStore) UpdateBook(_ context.Context, updBook entity.Book) error {
	_, idx, ok := lo.FindIndexOf(s.books, func(b entity.Book) bool {
		return b.ID == updBook.ID
	})

	if !ok {
		return entity.ErrBookNotFound
	}

	s.books[idx] = updBook

	return s.save()
}
