package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownAlgorithm is returned by ByName for an unregistered name.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// registry lists the variants in presentation order.
var registry = []search.Algorithm{
	astar.Algorithm,
	dijkstra.Algorithm,
	bfs.Algorithm,
	dfs.Algorithm,
}

var aliases = map[string]string{
	"a*": astar.Name,
}

// ByName returns the algorithm registered under name.
func ByName(name string) (search.Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, alg := range registry {
		if alg.Name() == key {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// All returns every registered algorithm. The slice is a fresh copy.
func All() []search.Algorithm {
	out := make([]search.Algorithm, len(registry))
	copy(out, registry)
	return out
}

// Names returns the canonical names in presentation order.
func Names() []string {
	out := make([]string, len(registry))
	for i, alg := range registry {
		out[i] = alg.Name()
	}
	return out
}
