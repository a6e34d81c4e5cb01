package log

import (
	"github.com/project/librarydesk/pkg/logger"
	"go.uber.org/zap"
)

func InfoMostBorrowed(l *zap.Logger, msg string, titles int) {
	logger.MakeInfo(l, msg,
		zap.Int("titles", titles),
		zap.String("action", MostBorrowed))
}

func ErrorMostBorrowed(l *zap.Logger, err error, msg string) bool {
	return logger.CheckError(err, l, msg,
		zap.Error(err),
		zap.String("action", MostBorrowed))
}

func InfoHistory(l *zap.Logger, msg string, entries int) {
	logger.MakeInfo(l, msg,
		zap.Int("entries", entries),
		zap.String("action", History))
}

func ErrorHistory(l *zap.Logger, err error, msg string) bool {
	return logger.CheckError(err, l, msg,
		zap.Error(err),
		zap.String("action", History))
}
