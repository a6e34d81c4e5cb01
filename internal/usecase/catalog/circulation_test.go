package catalog

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/usecase/catalog/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/librarydesk/internal/entity"
)

func initCirculationTest(t *testing.T) (context.Context, *mocks.MockBooksRepository, *mocks.MockMembersRepository, *mocks.MockTransactionLog, *catalogImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockBooksRepo := mocks.NewMockBooksRepository(ctrl)
	mockMembersRepo := mocks.NewMockMembersRepository(ctrl)
	mockTranslog := mocks.NewMockTransactionLog(ctrl)
	ctx := context.Background()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	c := New(logger, mockBooksRepo, mockMembersRepo, mockTranslog)
	return ctx, mockBooksRepo, mockMembersRepo, mockTranslog, c
}

func TestBorrowBook(t *testing.T) {
	t.Parallel()

	const (
		idMember   = "M1"
		memberName = "Alice"
		title      = "Dune"
	)

	available := entity.Book{ID: "B1", Title: title, Author: "Frank Herbert", AvailableCopies: 2}

	tests := []struct {
		name       string
		memberErr  error
		borrowed   []string
		book       entity.Book
		bookErr    error
		appendErr  error
		updBookErr error
		updMembErr error
		requireErr error
	}{
		{name: "valid borrow",
			book: available},

		{name: "member not found",
			memberErr:  entity.ErrMemberNotFound,
			requireErr: entity.ErrMemberNotFound},

		{name: "book not found",
			bookErr:    entity.ErrBookNotFound,
			requireErr: entity.ErrBookNotFound},

		{name: "no copies available",
			book:       entity.Book{ID: "B1", Title: title, Author: "Frank Herbert", AvailableCopies: 0},
			requireErr: entity.ErrNoCopiesAvailable},

		{name: "already borrowed",
			borrowed:   []string{title},
			book:       available,
			requireErr: entity.ErrAlreadyBorrowed},

		{name: "log append error",
			book:       available,
			appendErr:  errInternal,
			requireErr: errInternal},

		{name: "book update error",
			book:       available,
			updBookErr: errInternal,
			requireErr: errInternal},

		{name: "member update error",
			book:       available,
			updMembErr: errInternal,
			requireErr: errInternal},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockBooksRepo, mockMembersRepo, mockTranslog, s := initCirculationTest(t)

			mockMembersRepo.EXPECT().FindMemberByID(ctx, idMember).
				Return(entity.Member{ID: idMember, Name: memberName, Borrowed: test.borrowed}, test.memberErr)

			checksPass := test.memberErr == nil && test.bookErr == nil &&
				test.book.AvailableCopies > 0 && !lo.Contains(test.borrowed, title)

			if test.memberErr == nil {
				mockBooksRepo.EXPECT().FindBookByTitle(ctx, title).Return(test.book, test.bookErr)
			}

			if checksPass {
				mockTranslog.EXPECT().Append(ctx, entity.ActionBorrowed, title, memberName, idMember).Return(test.appendErr)
			}

			if checksPass && test.appendErr == nil {
				mockBooksRepo.EXPECT().UpdateBook(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, upd entity.Book) error {
					require.Equal(t, test.book.AvailableCopies-1, upd.AvailableCopies)
					return test.updBookErr
				})
			}

			if checksPass && test.appendErr == nil && test.updBookErr == nil {
				mockMembersRepo.EXPECT().UpdateMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, upd entity.Member) error {
					require.Contains(t, upd.Borrowed, title)
					return test.updMembErr
				})
			}

			book, err := s.BorrowBook(ctx, idMember, title)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, book)
				return
			}

			require.Equal(t, test.book.AvailableCopies-1, book.AvailableCopies)
			require.Equal(t, title, book.Title)
		})
	}
}

func TestReturnBook(t *testing.T) {
	t.Parallel()

	const (
		idMember   = "M1"
		memberName = "Alice"
		title      = "Dune"
	)

	onLoan := entity.Book{ID: "B1", Title: title, Author: "Frank Herbert", AvailableCopies: 1}

	tests := []struct {
		name       string
		memberErr  error
		borrowed   []string
		book       entity.Book
		bookErr    error
		appendErr  error
		updBookErr error
		updMembErr error
		requireErr error
	}{
		{name: "valid return",
			borrowed: []string{title},
			book:     onLoan},

		{name: "member not found",
			memberErr:  entity.ErrMemberNotFound,
			requireErr: entity.ErrMemberNotFound},

		{name: "book not found",
			borrowed:   []string{title},
			bookErr:    entity.ErrBookNotFound,
			requireErr: entity.ErrBookNotFound},

		{name: "not borrowed",
			book:       onLoan,
			requireErr: entity.ErrNotBorrowed},

		{name: "log append error",
			borrowed:   []string{title},
			book:       onLoan,
			appendErr:  errInternal,
			requireErr: errInternal},

		{name: "book update error",
			borrowed:   []string{title},
			book:       onLoan,
			updBookErr: errInternal,
			requireErr: errInternal},

		{name: "member update error",
			borrowed:   []string{title},
			book:       onLoan,
			updMembErr: errInternal,
			requireErr: errInternal},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockBooksRepo, mockMembersRepo, mockTranslog, s := initCirculationTest(t)

			mockMembersRepo.EXPECT().FindMemberByID(ctx, idMember).
				Return(entity.Member{ID: idMember, Name: memberName, Borrowed: test.borrowed}, test.memberErr)

			checksPass := test.memberErr == nil && test.bookErr == nil && lo.Contains(test.borrowed, title)

			if test.memberErr == nil {
				mockBooksRepo.EXPECT().FindBookByTitle(ctx, title).Return(test.book, test.bookErr)
			}

			if checksPass {
				mockTranslog.EXPECT().Append(ctx, entity.ActionReturned, title, memberName, idMember).Return(test.appendErr)
			}

			if checksPass && test.appendErr == nil {
				mockBooksRepo.EXPECT().UpdateBook(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, upd entity.Book) error {
					require.Equal(t, test.book.AvailableCopies+1, upd.AvailableCopies)
					return test.updBookErr
				})
			}

			if checksPass && test.appendErr == nil && test.updBookErr == nil {
				mockMembersRepo.EXPECT().UpdateMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, upd entity.Member) error {
					require.NotContains(t, upd.Borrowed, title)
					return test.updMembErr
				})
			}

			book, err := s.ReturnBook(ctx, idMember, title)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, book)
				return
			}

			require.Equal(t, test.book.AvailableCopies+1, book.AvailableCopies)
			require.Equal(t, title, book.Title)
		})
	}
}
