package repository

import (
	"context"

	"github.com/project/librarydesk/internal/entity"
)

type (
	BooksRepository interface {
		AllBooks(ctx context.Context) []entity.Book
		FindBookByTitle(ctx context.Context, title string) (entity.Book, error)
		AddBook(ctx context.Context, book entity.Book) error
		UpdateBook(ctx context.Context, updBook entity.Book) error
	}

	MembersRepository interface {
		AllMembers(ctx context.Context) []entity.Member
		FindMemberByID(ctx context.Context, idMember string) (entity.Member, error)
		AddMember(ctx context.Context, member entity.Member) error
		UpdateMember(ctx context.Context, updMember entity.Member) error
	}

	TransactionLog interface {
		Append(ctx context.Context, action entity.TransactionAction, bookTitle, memberName, memberID string) error
		ReadAll(ctx context.Context) ([]string, error)
		MostBorrowed(ctx context.Context) ([]entity.BorrowStat, error)
	}
)

// Record fields are joined with fieldDelimiter, list values inside a
// field with listDelimiter. Values are written as-is, without quoting.
const (
	fieldDelimiter = ","
	listDelimiter  = ";"
)

// maxRecordBytes caps a single record line on load. Member records grow
// with every borrowed title and can exceed bufio's 64KiB default.
const maxRecordBytes = 16 << 20
