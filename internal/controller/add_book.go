package controller

import (
	"context"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/project/librarydesk/internal/log"
)

type addBookRequest struct {
	ID     string
	Title  string
	Author string
	Copies string
}

func (r addBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.Copies, validation.Required, is.Digit),
	)
}

func (i *implementation) addBook(ctx context.Context) {
	var req addBookRequest
	var ok bool

	if req.ID, ok = i.prompt("Enter Book ID: "); !ok {
		return
	}
	if req.Title, ok = i.prompt("Enter Title: "); !ok {
		return
	}
	if req.Author, ok = i.prompt("Enter Author: "); !ok {
		return
	}
	if req.Copies, ok = i.prompt("Enter Available Copies: "); !ok {
		return
	}

	if err := req.Validate(); log.ErrorAddBook(i.logger, err, "Got invalid request", req.Title) {
		fmt.Fprintf(i.out, "Invalid input: %v\n", err)
		return
	}

	copies, err := strconv.Atoi(req.Copies)

	if err != nil {
		fmt.Fprintln(i.out, "Invalid input for copies. Please enter a number.")
		return
	}

	book, err := i.catalog.AddBook(ctx, req.ID, req.Title, req.Author, copies)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	fmt.Fprintln(i.out, "Book added successfully!")
	if req.ID == "" {
		fmt.Fprintf(i.out, "Assigned Book ID: %s\n", book.ID)
	}
}
