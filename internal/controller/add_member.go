package controller

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/project/librarydesk/internal/log"
)

type addMemberRequest struct {
	ID   string
	Name string
}

func (r addMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

func (i *implementation) addMember(ctx context.Context) {
	var req addMemberRequest
	var ok bool

	if req.ID, ok = i.prompt("Enter Member ID: "); !ok {
		return
	}
	if req.Name, ok = i.prompt("Enter Name: "); !ok {
		return
	}

	if err := req.Validate(); log.ErrorAddMember(i.logger, err, "Got invalid request", req.Name) {
		fmt.Fprintf(i.out, "Invalid input: %v\n", err)
		return
	}

	member, err := i.catalog.AddMember(ctx, req.ID, req.Name)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	fmt.Fprintln(i.out, "Member added successfully!")
	if req.ID == "" {
		fmt.Fprintf(i.out, "Assigned Member ID: %s\n", member.ID)
	}
}
