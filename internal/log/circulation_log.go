package log

import (
	"github.com/project/librarydesk/pkg/logger"
	"go.uber.org/zap"
)

func InfoBorrowBook(l *zap.Logger, msg string, memberID, title string) {
	logger.MakeInfo(l, msg,
		zap.String("member_id", memberID),
		zap.String("book_title", title),
		zap.String("action", BorrowBook))
}

func ErrorBorrowBook(l *zap.Logger, err error, msg string, memberID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("member_id", memberID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", BorrowBook))
}

func InfoReturnBook(l *zap.Logger, msg string, memberID, title string) {
	logger.MakeInfo(l, msg,
		zap.String("member_id", memberID),
		zap.String("book_title", title),
		zap.String("action", ReturnBook))
}

func ErrorReturnBook(l *zap.Logger, err error, msg string, memberID, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("member_id", memberID),
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", ReturnBook))
}
