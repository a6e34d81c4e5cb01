package catalog

import (
	"context"

	"github.com/project/librarydesk/internal/entity"
)

type (
	CatalogUseCase interface {
		AddBook(ctx context.Context, id, title, author string, copies int) (entity.Book, error)
		FindBookByTitle(ctx context.Context, title string) (entity.Book, error)
		ListBooks(ctx context.Context) []entity.Book
		SearchByAuthor(ctx context.Context, author string) []entity.Book
		AddMember(ctx context.Context, id, name string) (entity.Member, error)
		FindMemberByID(ctx context.Context, idMember string) (entity.Member, error)
		ListMembers(ctx context.Context) []entity.Member
		BorrowBook(ctx context.Context, idMember, title string) (entity.Book, error)
		ReturnBook(ctx context.Context, idMember, title string) (entity.Book, error)
	}

	ReportsUseCase interface {
		MostBorrowed(ctx context.Context) ([]entity.BorrowStat, error)
		TransactionHistory(ctx context.Context) ([]string, error)
	}
)
