package entity

// TransactionAction is the kind of a circulation event as it appears
// in the transaction log.
type TransactionAction string

const (
	ActionBorrowed TransactionAction = "Borrowed"
	ActionReturned TransactionAction = "Returned"
)

// BorrowStat is one row of the most-borrowed report.
type BorrowStat struct {
	Title string
	Count int
}
