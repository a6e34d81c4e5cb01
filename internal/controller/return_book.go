package controller

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/project/librarydesk/internal/log"
)

type returnBookRequest struct {
	MemberID string
	Title    string
}

func (r returnBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MemberID, validation.Required),
		validation.Field(&r.Title, validation.Required),
	)
}

func (i *implementation) returnBook(ctx context.Context) {
	var req returnBookRequest
	var ok bool

	if req.MemberID, ok = i.prompt("Enter Member ID: "); !ok {
		return
	}
	if req.Title, ok = i.prompt("Enter Title of Book to Return: "); !ok {
		return
	}

	if err := req.Validate(); log.ErrorReturnBook(i.logger, err, "Got invalid request", req.MemberID, req.Title) {
		fmt.Fprintf(i.out, "Invalid input: %v\n", err)
		return
	}

	book, err := i.catalog.ReturnBook(ctx, req.MemberID, req.Title)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	member, err := i.catalog.FindMemberByID(ctx, req.MemberID)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	fmt.Fprintf(i.out, "Book '%s' returned by %s.\n", book.Title, member.Name)
}
