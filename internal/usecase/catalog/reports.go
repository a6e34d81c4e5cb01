package catalog

import (
	"context"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/internal/log"
)

func (c *catalogImpl) MostBorrowed(ctx context.Context) ([]entity.BorrowStat, error) {
	stats, err := c.transactionLog.MostBorrowed(ctx)

	if log.ErrorMostBorrowed(c.logger, err, "Failed get most borrowed books") {
		return nil, err
	}

	log.InfoMostBorrowed(c.logger, "Got most borrowed books", len(stats))
	return stats, nil
}

func (c *catalogImpl) TransactionHistory(ctx context.Context) ([]string, error) {
	entries, err := c.transactionLog.ReadAll(ctx)

	if log.ErrorHistory(c.logger, err, "Failed read transaction history") {
		return nil, err
	}

	log.InfoHistory(c.logger, "Read transaction history", len(entries))
	return entries, nil
}
