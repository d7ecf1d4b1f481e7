package config_test

import (
	"testing"
	"testing/fstest"

	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// countingHost records file existence probes.
type countingHost struct {
	*fs.FSHost
	probes int
}

func (h *countingHost) FileExists(path string) bool {
	h.probes++
	return h.FSHost.FileExists(path)
}

func newCountingHost(files fstest.MapFS) *countingHost {
	return &countingHost{FSHost: fs.NewFSHost("/repo", files)}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}
