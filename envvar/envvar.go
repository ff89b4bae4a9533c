// Package envvar provides typed lookups of environment variables, used to configure the priority queue tooling.
package envvar

import (
	"fmt"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/couchbase/tools-pqtree/log"
)

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetBool returns the boolean value of the environmental variable varName if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}

	return ret, true
}

// GetLevel returns the log level named by the environmental variable varName, if the env var is empty or not a
// known level it will return the given default and false.
func GetLevel(varName string, def log.Level) (log.Level, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return def, false
	}

	level, ok := log.ParseLevel(val)
	if !ok {
		return def, false
	}

	return level, true
}

// GetJSON decodes the JSON held in the environmental variable varName into v. The bool return value indicates whether
// the variable was set, v is left untouched when it isn't.
func GetJSON(varName string, v any) (bool, error) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return false, nil
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(env), v); err != nil {
		return true, fmt.Errorf("failed to decode '%s': %w", varName, err)
	}

	return true, nil
}
