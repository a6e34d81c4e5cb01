package log

import (
	"github.com/project/librarydesk/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, title, author string, copies int, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("book_title", title),
			zap.String("book_author", author),
			zap.Int("copies", copies),
			zap.String("action", AddBook))
		return
	}
	logger.MakeInfo(l, "book was added",
		zap.String("book_id", id[0]),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Int("copies", copies),
		zap.String("action", AddBook))
}

func ErrorAddBook(l *zap.Logger, err error, msg string, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoFindBook(l *zap.Logger, msg string, title string) {
	logger.MakeInfo(l, msg,
		zap.String("book_title", title),
		zap.String("action", FindBook))
}

func ErrorFindBook(l *zap.Logger, err error, msg string, title string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("book_title", title),
		zap.Error(err),
		zap.String("action", FindBook))
}

func InfoSearchByAuthor(l *zap.Logger, msg string, query string, found int) {
	logger.MakeInfo(l, msg,
		zap.String("query", query),
		zap.Int("found", found),
		zap.String("action", SearchByAuthor))
}

func ErrorSearchByAuthor(l *zap.Logger, err error, msg string, query string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("query", query),
		zap.Error(err),
		zap.String("action", SearchByAuthor))
}
