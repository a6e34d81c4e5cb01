package controller

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/project/librarydesk/internal/log"
)

type searchAuthorRequest struct {
	Author string
}

func (r searchAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author, validation.Required),
	)
}

func (i *implementation) searchByAuthor(ctx context.Context) {
	var req searchAuthorRequest
	var ok bool

	if req.Author, ok = i.prompt("Enter Author's Name: "); !ok {
		return
	}

	if err := req.Validate(); log.ErrorSearchByAuthor(i.logger, err, "Got invalid request", req.Author) {
		fmt.Fprintf(i.out, "Invalid input: %v\n", err)
		return
	}

	books := i.catalog.SearchByAuthor(ctx, req.Author)

	if len(books) == 0 {
		fmt.Fprintf(i.out, "No books found by author '%s'.\n", req.Author)
		return
	}

	fmt.Fprintf(i.out, "Books by '%s':\n", req.Author)
	for _, book := range books {
		i.printBook(book)
	}
}
