// Package markets defines the fixed registry of betting markets: named
// boolean predicates over a match's final score.
package markets

import "fmt"

// Predicate reports whether a market is realized for a final score.
type Predicate func(score1, score2 int) bool

// Registry is an immutable, ordered mapping from target name to predicate.
// Order matters: it is the default target list when a caller supplies none.
type Registry struct {
	names      []string
	predicates map[string]Predicate
}

// NoBet is the sentinel class label for samples where no bet is placed.
// It is not a market and is never present in a registry.
const NoBet = "-"

// NewRegistry builds a registry from ordered entries. Duplicate names are
// rejected so registry order stays unambiguous.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{predicates: make(map[string]Predicate, len(entries))}
	for _, entry := range entries {
		if entry.Name == NoBet {
			return nil, fmt.Errorf("%w: %q is reserved for the no-bet sentinel", ErrInvalidTargets, NoBet)
		}
		if entry.Predicate == nil {
			return nil, fmt.Errorf("%w: market %q has no predicate", ErrInvalidTargets, entry.Name)
		}
		if _, ok := r.predicates[entry.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate market %q", ErrInvalidTargets, entry.Name)
		}
		r.names = append(r.names, entry.Name)
		r.predicates[entry.Name] = entry.Predicate
	}
	return r, nil
}

// Entry pairs a market name with its predicate.
type Entry struct {
	Name      string
	Predicate Predicate
}

// Targets returns the registered market names in registry order.
func (r *Registry) Targets() []string {
	targets := make([]string, len(r.names))
	copy(targets, r.names)
	return targets
}

// Contains reports whether a target name is registered.
func (r *Registry) Contains(target string) bool {
	_, ok := r.predicates[target]
	return ok
}

// Predicate looks up a market predicate by name.
func (r *Registry) Predicate(target string) (Predicate, error) {
	p, ok := r.predicates[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarket, target)
	}
	return p, nil
}

// ValidateTargets checks an explicit target list against the registry. A nil
// or empty list is valid and means "use the full registry".
func (r *Registry) ValidateTargets(targets []string) error {
	for _, target := range targets {
		if !r.Contains(target) {
			return fmt.Errorf("%w: %q is not a registered market", ErrInvalidTargets, target)
		}
	}
	return nil
}

// ResolveTargets returns the explicit list when given, or the full registry
// in registry order when targets is nil or empty.
func (r *Registry) ResolveTargets(targets []string) ([]string, error) {
	if len(targets) == 0 {
		return r.Targets(), nil
	}
	if err := r.ValidateTargets(targets); err != nil {
		return nil, err
	}
	resolved := make([]string, len(targets))
	copy(resolved, targets)
	return resolved, nil
}

// Default returns the standard soccer book: match result plus total-goals
// lines. The over/under lines use half-goal totals so a push is impossible.
func Default() *Registry {
	r, err := NewRegistry([]Entry{
		{Name: "H", Predicate: func(s1, s2 int) bool { return s1 > s2 }},
		{Name: "D", Predicate: func(s1, s2 int) bool { return s1 == s2 }},
		{Name: "A", Predicate: func(s1, s2 int) bool { return s1 < s2 }},
		{Name: "over_1.5", Predicate: totalOver(1.5)},
		{Name: "under_1.5", Predicate: totalUnder(1.5)},
		{Name: "over_2.5", Predicate: totalOver(2.5)},
		{Name: "under_2.5", Predicate: totalUnder(2.5)},
		{Name: "over_3.5", Predicate: totalOver(3.5)},
		{Name: "under_3.5", Predicate: totalUnder(3.5)},
	})
	if err != nil {
		panic(err)
	}
	return r
}

func totalOver(line float64) Predicate {
	return func(s1, s2 int) bool { return float64(s1+s2) > line }
}

func totalUnder(line float64) Predicate {
	return func(s1, s2 int) bool { return float64(s1+s2) < line }
}
