package catalog

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/internal/log"
)

// BorrowBook checks the member first, then the book, then availability,
// then the member's current loans. The first failed check wins and
// nothing is changed.
func (c *catalogImpl) BorrowBook(ctx context.Context, idMember, title string) (entity.Book, error) {
	log.InfoBorrowBook(c.logger, "Start of borrow book", idMember, title)

	member, err := c.membersRepository.FindMemberByID(ctx, idMember)

	if log.ErrorBorrowBook(c.logger, err, "Failed borrow book", idMember, title) {
		return entity.Book{}, err
	}

	book, err := c.booksRepository.FindBookByTitle(ctx, title)

	if log.ErrorBorrowBook(c.logger, err, "Failed borrow book", idMember, title) {
		return entity.Book{}, err
	}

	if book.AvailableCopies == 0 {
		log.ErrorBorrowBook(c.logger, entity.ErrNoCopiesAvailable, "Failed borrow book", idMember, title)
		return entity.Book{}, entity.ErrNoCopiesAvailable
	}

	if lo.Contains(member.Borrowed, book.Title) {
		log.ErrorBorrowBook(c.logger, entity.ErrAlreadyBorrowed, "Failed borrow book", idMember, title)
		return entity.Book{}, entity.ErrAlreadyBorrowed
	}

	book.AvailableCopies--
	member.Borrowed = append(member.Borrowed, book.Title)

	err = c.transactionLog.Append(ctx, entity.ActionBorrowed, book.Title, member.Name, member.ID)

	if log.ErrorBorrowBook(c.logger, err, "Failed borrow book", idMember, title) {
		return entity.Book{}, err
	}

	err = c.booksRepository.UpdateBook(ctx, book)

	if log.ErrorBorrowBook(c.logger, err, "Failed borrow book", idMember, title) {
		return entity.Book{}, err
	}

	err = c.membersRepository.UpdateMember(ctx, member)

	if log.ErrorBorrowBook(c.logger, err, "Failed borrow book", idMember, title) {
		return entity.Book{}, err
	}

	log.InfoBorrowBook(c.logger, "Borrowed the book", member.ID, book.Title)
	return book, nil
}

func (c *catalogImpl) ReturnBook(ctx context.Context, idMember, title string) (entity.Book, error) {
	log.InfoReturnBook(c.logger, "Start of return book", idMember, title)

	member, err := c.membersRepository.FindMemberByID(ctx, idMember)

	if log.ErrorReturnBook(c.logger, err, "Failed return book", idMember, title) {
		return entity.Book{}, err
	}

	book, err := c.booksRepository.FindBookByTitle(ctx, title)

	if log.ErrorReturnBook(c.logger, err, "Failed return book", idMember, title) {
		return entity.Book{}, err
	}

	idx := lo.IndexOf(member.Borrowed, book.Title)

	if idx == -1 {
		log.ErrorReturnBook(c.logger, entity.ErrNotBorrowed, "Failed return book", idMember, title)
		return entity.Book{}, entity.ErrNotBorrowed
	}

	book.AvailableCopies++
	member.Borrowed = slices.Delete(member.Borrowed, idx, idx+1)

	err = c.transactionLog.Append(ctx, entity.ActionReturned, book.Title, member.Name, member.ID)

	if log.ErrorReturnBook(c.logger, err, "Failed return book", idMember, title) {
		return entity.Book{}, err
	}

	err = c.booksRepository.UpdateBook(ctx, book)

	if log.ErrorReturnBook(c.logger, err, "Failed return book", idMember, title) {
		return entity.Book{}, err
	}

	err = c.membersRepository.UpdateMember(ctx, member)

	if log.ErrorReturnBook(c.logger, err, "Failed return book", idMember, title) {
		return entity.Book{}, err
	}

	log.InfoReturnBook(c.logger, "Returned the book", member.ID, book.Title)
	return book, nil
}
