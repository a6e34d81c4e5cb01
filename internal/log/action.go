package log

type Action = string

const (
	AddBook        Action = "AddBook"
	FindBook              = "FindBook"
	ListBooks             = "ListBooks"
	SearchByAuthor        = "SearchByAuthor"
	AddMember             = "AddMember"
	FindMember            = "FindMember"
	ListMembers           = "ListMembers"
	BorrowBook            = "BorrowBook"
	ReturnBook            = "ReturnBook"
	MostBorrowed          = "MostBorrowed"
	History               = "TransactionHistory"
)
