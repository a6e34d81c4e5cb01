package entity

// Member is a registered reader. Borrowed holds the titles of books
// the member currently has, each title at most once.
type Member struct {
	ID       string
	Name     string
	Borrowed []string
}
