package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/usecase/catalog/mocks"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/librarydesk/internal/entity"
)

var errInternal = errors.New("internal error")

func initBookTest(t *testing.T) (context.Context, *mocks.MockBooksRepository, *catalogImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockBooksRepo := mocks.NewMockBooksRepository(ctrl)
	ctx := context.Background()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	c := New(logger, mockBooksRepo, nil, nil)
	return ctx, mockBooksRepo, c
}

func TestAddBook(t *testing.T) {
	t.Parallel()

	const (
		title  = "Dune"
		author = "Frank Herbert"
		copies = 2
	)

	tests := []struct {
		name       string
		id         string
		lookupBook entity.Book
		lookupErr  error
		persistErr error
		requireErr error
	}{
		{name: "valid add book",
			id:        "B1",
			lookupErr: entity.ErrBookNotFound},

		{name: "blank id gets generated",
			id:        "",
			lookupErr: entity.ErrBookNotFound},

		{name: "duplicate title",
			id:         "B2",
			lookupBook: entity.Book{ID: "B1", Title: title, Author: author, AvailableCopies: 1},
			requireErr: entity.ErrDuplicateTitle},

		{name: "lookup internal error",
			id:         "B1",
			lookupErr:  errInternal,
			requireErr: errInternal},

		{name: "persist internal error",
			id:         "B1",
			lookupErr:  entity.ErrBookNotFound,
			persistErr: errInternal,
			requireErr: errInternal},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockBooksRepo, s := initBookTest(t)

			mockBooksRepo.EXPECT().FindBookByTitle(ctx, title).Return(test.lookupBook, test.lookupErr)

			var added entity.Book
			if errors.Is(test.lookupErr, entity.ErrBookNotFound) {
				mockBooksRepo.EXPECT().AddBook(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, input entity.Book) error {
					added = input
					return test.persistErr
				})
			}

			book, err := s.AddBook(ctx, test.id, title, author, copies)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, book)
				return
			}

			require.Equal(t, added, book)
			require.Equal(t, title, book.Title)
			require.Equal(t, author, book.Author)
			require.Equal(t, copies, book.AvailableCopies)

			if test.id != "" {
				require.Equal(t, test.id, book.ID)
				return
			}

			err = validation.ValidateStructWithContext(
				ctx,
				&book,
				validation.Field(&book.ID, is.UUID),
			)
			require.NoError(t, err)
		})
	}
}

func TestFindBookByTitle(t *testing.T) {
	t.Parallel()

	const title = "Dune"

	tests := []struct {
		name       string
		book       entity.Book
		requireErr error
	}{
		{name: "valid find book",
			book: entity.Book{ID: "B1", Title: title, Author: "Frank Herbert", AvailableCopies: 2}},

		{name: "book not found",
			requireErr: entity.ErrBookNotFound},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockBooksRepo, s := initBookTest(t)
			mockBooksRepo.EXPECT().FindBookByTitle(ctx, title).Return(test.book, test.requireErr)

			book, err := s.FindBookByTitle(ctx, title)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, book)
				return
			}
			require.Equal(t, test.book, book)
		})
	}
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	books := []entity.Book{
		{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 2},
		{ID: "B2", Title: "Emma", Author: "Jane Austen", AvailableCopies: 1},
	}

	ctx, mockBooksRepo, s := initBookTest(t)
	mockBooksRepo.EXPECT().AllBooks(ctx).Return(books)

	require.Equal(t, books, s.ListBooks(ctx))
}

func TestSearchByAuthor(t *testing.T) {
	t.Parallel()

	books := []entity.Book{
		{ID: "B1", Title: "Dune", Author: "Frank Herbert", AvailableCopies: 2},
		{ID: "B2", Title: "Emma", Author: "Jane Austen", AvailableCopies: 1},
		{ID: "B3", Title: "Hamlet", Author: "William Shakespeare", AvailableCopies: 1},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "full name match",
			query: "Frank Herbert",
			want:  []string{"B1"}},

		{name: "substring is case insensitive",
			query: "aUSt",
			want:  []string{"B2"}},

		{name: "substring with several matches",
			query: "an",
			want:  []string{"B1", "B2"}},

		{name: "no matches",
			query: "Tolstoy",
			want:  []string{}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockBooksRepo, s := initBookTest(t)
			mockBooksRepo.EXPECT().AllBooks(ctx).Return(books)

			found := lo.Map(s.SearchByAuthor(ctx, test.query), func(book entity.Book, _ int) string {
				return book.ID
			})
			require.Equal(t, test.want, found)
		})
	}
}
