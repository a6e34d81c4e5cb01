package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/project/librarydesk/internal/entity"
)

const menuText = `
===== SMART LIBRARY MANAGEMENT SYSTEM =====
1. Add New Book
2. Add New Member
3. Display All Books
4. Display All Members
5. Borrow Book
6. Return Book
7. Search by Author
8. Most Borrowed Book
9. Transaction History
10. Exit
`

// Run drives the menu loop until the user exits, input ends, or ctx is
// cancelled. Every command runs to completion before the next prompt.
func (i *implementation) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprint(i.out, menuText)

		choice, ok := i.prompt("Enter your choice: ")

		if !ok {
			return i.in.Err()
		}

		switch choice {
		case "1":
			i.addBook(ctx)
		case "2":
			i.addMember(ctx)
		case "3":
			i.listBooks(ctx)
		case "4":
			i.listMembers(ctx)
		case "5":
			i.borrowBook(ctx)
		case "6":
			i.returnBook(ctx)
		case "7":
			i.searchByAuthor(ctx)
		case "8":
			i.mostBorrowed(ctx)
		case "9":
			i.transactionHistory(ctx)
		case "10":
			fmt.Fprintln(i.out, "Exiting the system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(i.out, "Invalid choice. Please try again.")
		}
	}
}

func (i *implementation) prompt(label string) (string, bool) {
	fmt.Fprint(i.out, label)

	if !i.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(i.in.Text()), true
}

func (i *implementation) printBook(book entity.Book) {
	fmt.Fprintf(i.out, "Book ID: %s | Title: %s | Author: %s | Available: %d\n",
		book.ID, book.Title, book.Author, book.AvailableCopies)
}

func (i *implementation) printMember(member entity.Member) {
	fmt.Fprintf(i.out, "Member ID: %s | Name: %s\n", member.ID, member.Name)

	if len(member.Borrowed) == 0 {
		fmt.Fprintln(i.out, "  No books currently borrowed.")
		return
	}

	fmt.Fprintln(i.out, "  Borrowed Books:")
	for _, title := range member.Borrowed {
		fmt.Fprintf(i.out, "  - %s\n", title)
	}
}
