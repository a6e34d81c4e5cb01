package entity

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrDuplicateTitle    = errors.New("book with this title already exists")
	ErrDuplicateMemberID = errors.New("member with this id already exists")
	ErrNoCopiesAvailable = errors.New("no available copies of this book")
	ErrAlreadyBorrowed   = errors.New("member has already borrowed this book")
	ErrNotBorrowed       = errors.New("member has not borrowed this book")
)
