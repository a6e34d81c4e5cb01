package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/project/librarydesk/config"
	"github.com/project/librarydesk/internal/controller"
	"github.com/project/librarydesk/internal/usecase/catalog"
	"github.com/project/librarydesk/internal/usecase/repository"
)

// Run wires the stores, the catalog and the console controller together
// and drives the menu loop until the user exits or the process is signalled.
func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var logRepo *zap.Logger
	if cfg.Log.LogRepo {
		logRepo = logger
	} else {
		logRepo = nil
	}

	booksRepository, err := repository.NewBookStore(logRepo, cfg.BooksPath())
	if err != nil {
		logger.Error("can not load book store", zap.Error(err))
		return
	}

	membersRepository, err := repository.NewMemberStore(logRepo, cfg.MembersPath())
	if err != nil {
		logger.Error("can not load member store", zap.Error(err))
		return
	}

	transactionLog := repository.NewTransactionLog(logRepo, cfg.TransactionsPath())

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	} else {
		logUseCase = nil
	}
	useCases := catalog.New(logUseCase, booksRepository, membersRepository, transactionLog)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	} else {
		logController = nil
	}
	ctrl := controller.New(logController, useCases, useCases, os.Stdin, os.Stdout)

	if err = ctrl.Run(ctx); err != nil {
		logger.Error("console loop failed", zap.Error(err))
	}
}
