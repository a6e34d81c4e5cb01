package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/log"
	"github.com/project/librarydesk/pkg/logger"
)

func (i *implementation) listBooks(ctx context.Context) {
	books := i.catalog.ListBooks(ctx)

	logger.MakeInfo(i.logger, "Displaying all books",
		zap.Int("count", len(books)),
		zap.String("action", log.ListBooks))

	if len(books) == 0 {
		fmt.Fprintln(i.out, "No books in the library.")
		return
	}

	for _, book := range books {
		i.printBook(book)
	}
}
