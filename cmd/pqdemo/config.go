package main

import (
	"fmt"

	"github.com/couchbase/tools-pqtree/envvar"
	"github.com/couchbase/tools-pqtree/log"
	"github.com/couchbase/tools-pqtree/pqtree"
)

const (
	// envLogLevel is the minimum level of messages which are logged.
	envLogLevel = "PQDEMO_LOG_LEVEL"

	// envJSON prints the queue as JSON rather than one entry per line.
	envJSON = "PQDEMO_JSON"

	// envEntries is a JSON array of items to enqueue, replacing the default entries.
	envEntries = "PQDEMO_ENTRIES"

	// envRepeat is the number of copies of the queue which are made and compared against it.
	envRepeat = "PQDEMO_REPEAT"
)

// defaultEntries are enqueued when none are provided through the environment.
var defaultEntries = []pqtree.Item[int]{
	{Payload: 4, Priority: 1},
	{Payload: 5, Priority: 5},
	{Payload: 8, Priority: 4},
	{Payload: 6, Priority: 1},
	{Payload: 0, Priority: 3},
	{Payload: -1, Priority: 4},
	{Payload: 0, Priority: 11},
	{Payload: 3, Priority: 0},
	{Payload: 8, Priority: -1},
	{Payload: 0, Priority: 0},
}

// config is the configuration of a single run of the demo.
type config struct {
	level   log.Level
	json    bool
	repeat  int
	entries []pqtree.Item[int]
}

// configFromEnv reads the configuration from the environment, using defaults for any variables which aren't set.
func configFromEnv() (config, error) {
	cfg := config{entries: defaultEntries}

	cfg.level, _ = envvar.GetLevel(envLogLevel, log.LevelInfo)
	cfg.json, _ = envvar.GetBool(envJSON)

	if repeat, ok := envvar.GetInt(envRepeat); ok {
		if repeat < 0 {
			return config{}, fmt.Errorf("'%s' must not be negative, got %d", envRepeat, repeat)
		}

		cfg.repeat = repeat
	}

	var entries []pqtree.Item[int]

	set, err := envvar.GetJSON(envEntries, &entries)
	if err != nil {
		return config{}, fmt.Errorf("failed to get entries: %w", err)
	}

	if set {
		cfg.entries = entries
	}

	return cfg, nil
}
