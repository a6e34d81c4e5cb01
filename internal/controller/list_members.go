package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/log"
	"github.com/project/librarydesk/pkg/logger"
)

func (i *implementation) listMembers(ctx context.Context) {
	members := i.catalog.ListMembers(ctx)

	logger.MakeInfo(i.logger, "Displaying all members",
		zap.Int("count", len(members)),
		zap.String("action", log.ListMembers))

	if len(members) == 0 {
		fmt.Fprintln(i.out, "No members in the library.")
		return
	}

	for _, member := range members {
		i.printMember(member)
	}
}
