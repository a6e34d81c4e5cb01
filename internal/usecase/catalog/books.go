package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/internal/log"
)

func (c *catalogImpl) AddBook(ctx context.Context, id, title, author string, copies int) (entity.Book, error) {
	log.InfoAddBook(c.logger, "Start of add book", title, author, copies)

	// Titles identify books to readers, so a second book with the same
	// title is rejected even when its id differs.
	_, err := c.booksRepository.FindBookByTitle(ctx, title)

	if err == nil {
		log.ErrorAddBook(c.logger, entity.ErrDuplicateTitle, "Failed add book", title)
		return entity.Book{}, entity.ErrDuplicateTitle
	}

	if !errors.Is(err, entity.ErrBookNotFound) {
		log.ErrorAddBook(c.logger, err, "Failed add book", title)
		return entity.Book{}, err
	}

	book := entity.Book{
		ID:              id,
		Title:           title,
		Author:          author,
		AvailableCopies: copies,
	}

	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	err = c.booksRepository.AddBook(ctx, book)

	if log.ErrorAddBook(c.logger, err, "Failed add book", title) {
		return entity.Book{}, err
	}

	log.InfoAddBook(c.logger, "Added the book", book.Title, book.Author, book.AvailableCopies, book.ID)
	return book, nil
}

func (c *catalogImpl) FindBookByTitle(ctx context.Context, title string) (entity.Book, error) {
	book, err := c.booksRepository.FindBookByTitle(ctx, title)

	if log.ErrorFindBook(c.logger, err, "Failed find book", title) {
		return entity.Book{}, err
	}

	log.InfoFindBook(c.logger, "Found the book", title)
	return book, nil
}

func (c *catalogImpl) ListBooks(ctx context.Context) []entity.Book {
	return c.booksRepository.AllBooks(ctx)
}

func (c *catalogImpl) SearchByAuthor(ctx context.Context, author string) []entity.Book {
	query := strings.ToLower(author)
	books := lo.Filter(c.booksRepository.AllBooks(ctx), func(book entity.Book, _ int) bool {
		return strings.Contains(strings.ToLower(book.Author), query)
	})

	log.InfoSearchByAuthor(c.logger, "Searched books by author", author, len(books))
	return books
}
