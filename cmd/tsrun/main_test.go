package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/app"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app        *app.App
	logger     *mocks.MockLogger
	transpiler *mocks.MockTranspiler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	transpiler := mocks.NewMockTranspiler(ctrl)

	host := fs.NewOSHostAt(fs.NewWalker(), t.TempDir())
	application := app.New(
		transpiler,
		host,
		mocks.NewMockOutputCache(ctrl),
		mocks.NewMockWatcher(ctrl),
		nil,
		logger,
	)
	return &testApp{app: application, logger: logger, transpiler: transpiler}
}

func (ta *testApp) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: ta.app, Logger: ta.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ta := newTestApp(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), ta.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that unexpected errors are logged.
func TestRun_ExecutionError(t *testing.T) {
	ta := newTestApp(t)
	ta.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrSourceDirMissing)
	})

	exitCode := run(context.Background(), []string{"build", "missing", "out"}, new(bytes.Buffer), ta.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Diagnostics verifies that files with diagnostics fail without logging an error.
func TestRun_Diagnostics(t *testing.T) {
	ta := newTestApp(t)
	ta.transpiler.EXPECT().Transpile(gomock.Any(), "bad.ts", gomock.Any()).Return(domain.TranspilationResult{
		FileName: "/repo/bad.ts",
		Diagnostics: []domain.Diagnostic{{
			File:     "/repo/bad.ts",
			Line:     1,
			Column:   11,
			Code:     1005,
			Category: domain.CategoryError,
			Message:  "')' expected.",
			Kind:     domain.KindSyntactic,
		}},
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"transpile", "bad.ts", "--pretty=false"}, stderr, ta.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "error TS1005: ')' expected.")
}
