package controller

import (
	"errors"

	"github.com/project/librarydesk/internal/entity"
)

func (i *implementation) convertErr(err error) string {
	switch {
	case errors.Is(err, entity.ErrMemberNotFound):
		return "Error: Member not found."
	case errors.Is(err, entity.ErrBookNotFound):
		return "Error: Book not found."
	case errors.Is(err, entity.ErrNoCopiesAvailable):
		return "Error: No available copies of this book."
	case errors.Is(err, entity.ErrAlreadyBorrowed):
		return "Error: Member has already borrowed this book."
	case errors.Is(err, entity.ErrNotBorrowed):
		return "Error: Member has not borrowed this book."
	case errors.Is(err, entity.ErrDuplicateTitle):
		return "Error: A book with this title already exists."
	case errors.Is(err, entity.ErrDuplicateMemberID):
		return "Error: A member with this ID already exists."
	default:
		return "Error: " + err.Error()
	}
}
