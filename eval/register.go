package eval

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	symbols = map[string]Symbol{}
)

func init() {
	for _, s := range []Symbol{Get(), Has(), Keys(), Truth(), OSEnv(), ToValue()} {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

// Register makes s available to every later Eval.
func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	if _, present := symbols[s.String()]; present {
		return fmt.Errorf("%w: %s", ErrSymbolExists, s)
	}
	symbols[s.String()] = s
	return nil
}

func Lookup(name string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return symbols[name]
}

// Symbols returns the registered symbols sorted by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
