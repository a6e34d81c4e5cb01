package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/pkg/logger"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	borrowedMarker  = string(entity.ActionBorrowed) + ":"
)

var _ TransactionLog = (*transactionLog)(nil)

type transactionLog struct {
	logger *zap.Logger
	path   string
	now    func() time.Time
}

func NewTransactionLog(logger *zap.Logger, path string) *transactionLog {
	return &transactionLog{
		logger: logger,
		path:   path,
		now:    time.Now,
	}
}

func (t *transactionLog) Append(_ context.Context, action entity.TransactionAction, bookTitle, memberName, memberID string) error {
	file, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return fmt.Errorf("can not open transaction log %s: %w", t.path, err)
	}
	defer file.Close()

	entry := fmt.Sprintf("[%s] %s: '%s' by %s (ID: %s)\n",
		t.now().Format(timestampLayout), action, bookTitle, memberName, memberID)

	if _, err = file.WriteString(entry); err != nil {
		return fmt.Errorf("can not append to transaction log %s: %w", t.path, err)
	}

	return nil
}

func (t *transactionLog) ReadAll(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(t.path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can not read transaction log %s: %w", t.path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}

	return lines, nil
}

// MostBorrowed tallies every Borrowed entry by the title quoted in it.
// The log is the only source for the report, so titles removed from the
// book store still count.
func (t *transactionLog) MostBorrowed(ctx context.Context) ([]entity.BorrowStat, error) {
	lines, err := t.ReadAll(ctx)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, line := range lines {
		if !strings.Contains(line, borrowedMarker) {
			continue
		}

		parts := strings.SplitN(line, "'", 3)

		if len(parts) < 3 {
			logger.MakeWarn(t.logger, "skipping transaction entry without quoted title",
				zap.String("file", t.path))
			continue
		}

		counts[parts[1]]++
	}

	if len(counts) == 0 {
		return nil, nil
	}

	maxCount := lo.Max(lo.Values(counts))
	top := lo.Keys(lo.PickBy(counts, func(_ string, count int) bool {
		return count == maxCount
	}))
	slices.Sort(top)

	return lo.Map(top, func(title string, _ int) entity.BorrowStat {
		return entity.BorrowStat{Title: title, Count: maxCount}
	}), nil
}
