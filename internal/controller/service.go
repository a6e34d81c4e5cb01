package controller

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/entity"
)

type (
	CatalogUseCase interface {
		AddBook(ctx context.Context, id, title, author string, copies int) (entity.Book, error)
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

type implementation struct {
	logger  *zap.Logger
	catalog CatalogUseCase
	reports ReportsUseCase
	in      *bufio.Scanner
	out     io.Writer
}

func New(
	logger *zap.Logger,
	catalog CatalogUseCase,
	reports ReportsUseCase,
	in io.Reader,
	out io.Writer,
) *implementation {
	return &implementation{
		logger:  logger,
		catalog: catalog,
		reports: reports,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}
