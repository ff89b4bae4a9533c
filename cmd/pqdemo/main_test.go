package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-pqtree/log"
	"github.com/couchbase/tools-pqtree/pqtree"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := configFromEnv()
	require.NoError(t, err)
	require.Equal(t, config{level: log.LevelInfo, entries: defaultEntries}, cfg)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envJSON, "true")
	t.Setenv(envRepeat, "3")
	t.Setenv(envEntries, `[{"payload":1,"priority":2}]`)

	cfg, err := configFromEnv()
	require.NoError(t, err)

	expected := config{
		level:   log.LevelDebug,
		json:    true,
		repeat:  3,
		entries: []pqtree.Item[int]{{Payload: 1, Priority: 2}},
	}

	require.Equal(t, expected, cfg)
}

func TestConfigFromEnvInvalid(t *testing.T) {
	t.Run("NegativeRepeat", func(t *testing.T) {
		t.Setenv(envRepeat, "-1")

		_, err := configFromEnv()
		require.Error(t, err)
	})

	t.Run("MalformedEntries", func(t *testing.T) {
		t.Setenv(envEntries, `{"payload":`)

		_, err := configFromEnv()
		require.ErrorContains(t, err, envEntries)
	})
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, run(&buf, config{entries: defaultEntries, repeat: 2}))

	expected := "-1 value: 8\n" +
		"0 value: 3\n" +
		"0 value: 0\n" +
		"1 value: 4\n" +
		"1 value: 6\n" +
		"3 value: 0\n" +
		"4 value: 8\n" +
		"4 value: -1\n" +
		"5 value: 5\n" +
		"11 value: 0\n" +
		"\n" +
		"8 8\n3 3\n0 0\n4 4\n6 6\n0 0\n8 8\n-1 -1\n5 5\n0 0\n"

	require.Equal(t, expected, buf.String())
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer

	entries := []pqtree.Item[int]{{Payload: 2, Priority: 2}, {Payload: 1, Priority: 1}}
	require.NoError(t, run(&buf, config{entries: entries, json: true}))

	require.Equal(t, `[{"payload":1,"priority":1},{"payload":2,"priority":2}]`+"\n\n1 1\n2 2\n", buf.String())
}

func TestRunEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, run(&buf, config{}))
	require.Equal(t, "\n", buf.String())
}
