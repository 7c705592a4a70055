package eval

import (
	"fmt"
	"maps"
	"os"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
)

// EnvEnv names the environment variable that may hold a wS mapping of
// default expression variables.
const EnvEnv = "WS_EVAL_ENV"

// LoadEnv returns the variables held in $WS_EVAL_ENV, nil when unset,
// overlaid with over.
func LoadEnv(over Env) (Env, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return over, nil
	}
	node, err := parse.ParseString(envEnv)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding env $%s: %w", ErrEval, EnvEnv, err)
	}
	if node.Type != ir.MappingType {
		return nil, fmt.Errorf("%w: decoding env $%s: wrong type %s", ErrEval, EnvEnv, node.Type)
	}
	res, _ := ir.ToAny(node).(map[string]any)
	if debug.Eval() {
		debug.Logf("loaded env from $%s\n", EnvEnv)
		debug.LogAny(res)
	}
	maps.Copy(res, over)
	return res, nil
}
