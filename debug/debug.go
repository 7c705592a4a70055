package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Alias bool
	Load  bool
	Eval  bool
	Patch bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("WS_DEBUG_PARSE")
	d.Alias = boolEnv("WS_DEBUG_ALIAS")
	d.Load = boolEnv("WS_DEBUG_LOAD")
	d.Eval = boolEnv("WS_DEBUG_EVAL")
	d.Patch = boolEnv("WS_DEBUG_PATCH")
	d.Match = boolEnv("WS_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Alias() bool {
	return d.Alias
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
