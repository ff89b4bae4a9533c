package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/couchbase/tools-pqtree/log"
)

// MockLogger is a 'log.Logger' which records every message, expectations are set against the level, format and a
// slice of the arguments.
type MockLogger struct {
	mock.Mock
}

// Log implements the 'log.Logger' interface.
func (m *MockLogger) Log(level log.Level, format string, args ...any) {
	m.Called(level, format, args)
}

// ExpectLog sets up a single expected message.
func (m *MockLogger) ExpectLog(level log.Level, format string, args ...any) *mock.Call {
	if args == nil {
		args = []any{}
	}

	return m.On("Log", level, format, args).Once()
}

// SetMockLogger installs a new MockLogger as the package logger, returning a function which removes it again.
func SetMockLogger() (*MockLogger, func()) {
	logger := &MockLogger{}
	log.SetLogger(logger)

	return logger, func() { log.SetLogger(nil) }
}
