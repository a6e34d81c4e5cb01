package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/controller/mocks"
)

var errInternal = errors.New("internal error")

func initControllerTest(t *testing.T, input string) (context.Context, *mocks.MockCatalogUseCase, *mocks.MockReportsUseCase, *implementation, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalogUseCase := mocks.NewMockCatalogUseCase(ctrl)
	reportsUseCase := mocks.NewMockReportsUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	out := new(bytes.Buffer)
	service := New(logger, catalogUseCase, reportsUseCase, strings.NewReader(input), out)
	return context.Background(), catalogUseCase, reportsUseCase, service, out
}
