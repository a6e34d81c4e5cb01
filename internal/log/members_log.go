package log

import (
	"github.com/project/librarydesk/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddMember(l *zap.Logger, msg string, memberName string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("member_name", memberName),
			zap.String("action", AddMember))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("member_id", id[0]),
		zap.String("member_name", memberName),
		zap.String("action", AddMember))
}

func ErrorAddMember(l *zap.Logger, err error, msg string, memberName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("member_name", memberName),
		zap.Error(err),
		zap.String("action", AddMember))
}

func InfoFindMember(l *zap.Logger, msg string, memberID string) {
	logger.MakeInfo(l, msg,
		zap.String("member_id", memberID),
		zap.String("action", FindMember))
}

func ErrorFindMember(l *zap.Logger, err error, msg string, memberID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("member_id", memberID),
		zap.Error(err),
		zap.String("action", FindMember))
}
