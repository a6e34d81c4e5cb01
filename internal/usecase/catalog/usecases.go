package catalog

import (
	"context"

	"go.uber.org/zap"

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

var _ CatalogUseCase = (*catalogImpl)(nil)
var _ ReportsUseCase = (*catalogImpl)(nil)

type catalogImpl struct {
	logger            *zap.Logger
	booksRepository   BooksRepository
	membersRepository MembersRepository
	transactionLog    TransactionLog
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	membersRepository MembersRepository,
	transactionLog TransactionLog,
) *catalogImpl {
	return &catalogImpl{
		logger:            logger,
		booksRepository:   booksRepository,
		membersRepository: membersRepository,
		transactionLog:    transactionLog,
	}
}
