package entity

// Book is a single catalog record. AvailableCopies counts the copies
// currently on the shelf, not the total owned by the library.
type Book struct {
	ID              string
	Title           string
	Author          string
	AvailableCopies int
}
