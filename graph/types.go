package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// infinity is the weight reported for a missing edge and the distance of an
// unreached vertex.
var infinity = math.Inf(1)

// Sentinel errors returned by the graph package.
var (
	// ErrInvalidVertexCount indicates a negative vertex count passed to New.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance option.
	ErrBadMaxDistance = errors.New("graph: MaxDistance must be non-negative")

	// ErrUnknownPolicy indicates a policy name that ParsePolicy does not know.
	ErrUnknownPolicy = errors.New("graph: unknown relaxation policy")
)

// Edge is a directed, weighted connection stored in the adjacency list of its
// source vertex.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Step is one traversed edge of a reconstructed path.
type Step struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Cost float64 `json:"cost"`
}

// Path is the result of a shortest-path query. Steps is empty when source and
// target are the same vertex.
type Path struct {
	Steps []Step  `json:"steps"`
	Total float64 `json:"total"`
}

// Vertices returns the vertex sequence of the path, source first.
func (p *Path) Vertices() []int {
	if len(p.Steps) == 0 {
		return nil
	}
	out := make([]int, 0, len(p.Steps)+1)
	out = append(out, p.Steps[0].From)
	for _, s := range p.Steps {
		out = append(out, s.To)
	}
	return out
}

// Policy selects how vertices are claimed during relaxation.
type Policy int

const (
	// FinalizeOnPop allows repeated relaxation until a vertex is popped.
	FinalizeOnPop Policy = iota

	// FirstEnqueueWins claims a vertex the first time it is pushed.
	FirstEnqueueWins
)

func (p Policy) String() string {
	switch p {
	case FinalizeOnPop:
		return "finalize-on-pop"
	case FirstEnqueueWins:
		return "first-enqueue-wins"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration string into a Policy. The empty string
// selects FinalizeOnPop.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "finalize-on-pop":
		return FinalizeOnPop, nil
	case "first-enqueue-wins":
		return FirstEnqueueWins, nil
	}
	return FinalizeOnPop, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Options configures a shortest-path query.
//
// Policy      – relaxation policy, FinalizeOnPop by default.
// MaxDistance – vertices farther than this are not explored. Default +Inf.
type Options struct {
	Policy      Policy
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithPolicy selects the relaxation policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxDistance caps the explored distance. A negative or NaN value panics.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the options used when none are passed.
func DefaultOptions() Options {
	return Options{
		Policy:      FinalizeOnPop,
		MaxDistance: infinity,
	}
}
