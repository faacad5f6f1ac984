package backtest

import (
	"fmt"
	"sort"
	"strings"
)

// Params is one point of a hyperparameter grid, keyed by nested parameter
// names such as "classifier__strategy".
type Params map[string]any

// String renders a canonical, order-stable form used as the grouping key in
// result rows.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%s: %v", key, p[key])
	}
	builder.WriteString("}")
	return builder.String()
}

// ParamGrid maps each hyperparameter to its candidate values.
type ParamGrid map[string][]any

// Expand enumerates the grid's Cartesian product deterministically: keys in
// lexicographic order, values in declared order, last key varying fastest.
// An empty grid expands to the single empty parameter set.
func (g ParamGrid) Expand() []Params {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := []Params{{}}
	for _, key := range keys {
		values := g[key]
		if len(values) == 0 {
			continue
		}
		expanded := make([]Params, 0, len(points)*len(values))
		for _, point := range points {
			for _, value := range values {
				next := make(Params, len(point)+1)
				for k, v := range point {
					next[k] = v
				}
				next[key] = value
				expanded = append(expanded, next)
			}
		}
		points = expanded
	}
	return points
}
