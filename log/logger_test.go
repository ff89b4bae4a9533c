package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(level Level, format string, args ...any) {
	m.Called(level, format, args)
}

func TestLogfNoLogger(t *testing.T) {
	SetLogger(nil)
	require.NotPanics(t, func() { Infof("(Test) %d", 42) })
}

func TestLogfLevels(t *testing.T) {
	logger := &mockLogger{}
	defer SetLogger(nil)

	SetLogger(logger)

	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError} {
		logger.On("Log", level, "(Test) %s", []any{"msg"}).Once()
	}

	Tracef("(Test) %s", "msg")
	Debugf("(Test) %s", "msg")
	Infof("(Test) %s", "msg")
	Warnf("(Test) %s", "msg")
	Errorf("(Test) %s", "msg")

	logger.AssertExpectations(t)
}

func TestPanicf(t *testing.T) {
	logger := &mockLogger{}
	defer SetLogger(nil)

	SetLogger(logger)
	logger.On("Log", LevelPanic, "(Test) %d", []any{1}).Once()

	require.PanicsWithValue(t, "(Test) 1", func() { Panicf("(Test) %d", 1) })
	logger.AssertExpectations(t)
}

func TestParseLevel(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected Level
		ok       bool
	}

	cases := []testCase{
		{name: "trace", input: "trace", expected: LevelTrace, ok: true},
		{name: "upperCase", input: "DEBUG", expected: LevelDebug, ok: true},
		{name: "whitespace", input: " info ", expected: LevelInfo, ok: true},
		{name: "warnAlias", input: "warning", expected: LevelWarning, ok: true},
		{name: "error", input: "error", expected: LevelError, ok: true},
		{name: "unknown", input: "verbose"},
		{name: "empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := ParseLevel(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, level)
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "warn", LevelWarning.String())
	require.Equal(t, "level(42)", Level(42).String())
}

func TestStdoutLogger(t *testing.T) {
	var (
		buf    bytes.Buffer
		stamp  = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
		logger = StdoutLogger{MinLevel: LevelInfo, out: &buf, now: func() time.Time { return stamp }}
	)

	logger.Log(LevelDebug, "(Test) discarded")
	logger.Log(LevelWarning, "(Test) Queue has %d entries", 3)

	require.Equal(t, "2023-04-01T12:00:00Z WARN: (Test) Queue has 3 entries\n", buf.String())
}
