package tst

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrEmptyKey is returned when a key, query or prefix has no characters.
	ErrEmptyKey = errors.New("tst: key must have length >= 1")

	// ErrInvalidKey is returned for keys that are not valid UTF-8.
	ErrInvalidKey = errors.New("tst: key is not valid UTF-8")
)

// Wildcard matches any single rune in KeysThatMatch patterns.
const Wildcard = '.'

const nilNode = -1

type node struct {
	c           rune
	lo, mid, hi int
	has         bool // a key terminates here
}

// Trie is a ternary search trie mapping string keys to values of type V.
// The zero value is an empty trie ready to use.
type Trie[V any] struct {
	nodes []node
	vals  []V // parallel to nodes
	n     int
}

// New creates an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Len returns the number of keys with a value.
func (t *Trie[V]) Len() int { return t.n }

func (t *Trie[V]) root() int {
	if len(t.nodes) == 0 {
		return nilNode
	}
	return 0
}

// runes splits key into runes, rejecting empty and malformed keys so two
// distinct byte strings never share a node path.
func runes(key string) ([]rune, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if !utf8.ValidString(key) {
		return nil, ErrInvalidKey
	}
	return []rune(key), nil
}

func (t *Trie[V]) alloc(c rune) int {
	t.nodes = append(t.nodes, node{c: c, lo: nilNode, mid: nilNode, hi: nilNode})
	var zero V
	t.vals = append(t.vals, zero)
	return len(t.nodes) - 1
}

// Put associates val with key, overwriting any previous value.
func (t *Trie[V]) Put(key string, val V) error {
	k, err := runes(key)
	if err != nil {
		return err
	}
	x := t.dig(k)
	if !t.nodes[x].has {
		t.nodes[x].has = true
		t.n++
	}
	t.vals[x] = val
	return nil
}

// Delete clears the value stored under key. The node path is kept.
// Deleting a key that is not present does nothing.
func (t *Trie[V]) Delete(key string) error {
	k, err := runes(key)
	if err != nil {
		return err
	}
	x := t.find(k)
	if x == nilNode || !t.nodes[x].has {
		return nil
	}
	var zero V
	t.nodes[x].has = false
	t.vals[x] = zero
	t.n--
	return nil
}

// Get returns the value stored under key and whether it was present.
func (t *Trie[V]) Get(key string) (V, bool, error) {
	var zero V
	k, err := runes(key)
	if err != nil {
		return zero, false, err
	}
	x := t.find(k)
	if x == nilNode || !t.nodes[x].has {
		return zero, false, nil
	}
	return t.vals[x], true, nil
}

// Contains reports whether key has a value.
func (t *Trie[V]) Contains(key string) (bool, error) {
	_, ok, err := t.Get(key)
	return ok, err
}

// dig walks k from the root, creating nodes along the way, and returns the
// node of the last rune.
func (t *Trie[V]) dig(k []rune) int {
	if len(t.nodes) == 0 {
		t.alloc(k[0])
	}
	x, d := 0, 0
	for {
		c := k[d]
		switch {
		case c < t.nodes[x].c:
			if t.nodes[x].lo == nilNode {
				nx := t.alloc(c)
				t.nodes[x].lo = nx
			}
			x = t.nodes[x].lo
		case c > t.nodes[x].c:
			if t.nodes[x].hi == nilNode {
				nx := t.alloc(c)
				t.nodes[x].hi = nx
			}
			x = t.nodes[x].hi
		case d < len(k)-1:
			d++
			if t.nodes[x].mid == nilNode {
				nx := t.alloc(k[d])
				t.nodes[x].mid = nx
			}
			x = t.nodes[x].mid
		default:
			return x
		}
	}
}

// find returns the node of the last rune of k, or nilNode.
func (t *Trie[V]) find(k []rune) int {
	x, d := t.root(), 0
	for x != nilNode {
		nd := &t.nodes[x]
		switch {
		case k[d] < nd.c:
			x = nd.lo
		case k[d] > nd.c:
			x = nd.hi
		case d < len(k)-1:
			d++
			x = nd.mid
		default:
			return x
		}
	}
	return nilNode
}

// LongestPrefixOf returns the longest key that is a prefix of query,
// or "" when no key is.
func (t *Trie[V]) LongestPrefixOf(query string) (string, error) {
	q, err := runes(query)
	if err != nil {
		return "", err
	}
	length := 0
	x, i := t.root(), 0
	for x != nilNode && i < len(q) {
		nd := &t.nodes[x]
		switch {
		case q[i] < nd.c:
			x = nd.lo
		case q[i] > nd.c:
			x = nd.hi
		default:
			i++
			if nd.has {
				length = i
			}
			x = nd.mid
		}
	}
	return string(q[:length]), nil
}

// Keys returns every key in ascending order.
func (t *Trie[V]) Keys() []string {
	return t.collect(t.root(), nil, nil, nil)
}

// KeysWithPrefix returns the keys starting with prefix in ascending order,
// prefix itself first when it is a key.
func (t *Trie[V]) KeysWithPrefix(prefix string) ([]string, error) {
	p, err := runes(prefix)
	if err != nil {
		return nil, err
	}
	x := t.find(p)
	if x == nilNode {
		return nil, nil
	}
	var out []string
	if t.nodes[x].has {
		out = append(out, prefix)
	}
	return t.collect(t.nodes[x].mid, p, nil, out), nil
}

// KeysThatMatch returns the keys of the same length as pattern whose runes
// equal the pattern's at every position that is not Wildcard. An empty or
// malformed pattern matches nothing.
func (t *Trie[V]) KeysThatMatch(pattern string) []string {
	p, err := runes(pattern)
	if err != nil {
		return nil
	}
	return t.collect(t.root(), nil, p, nil)
}

type frame struct {
	x     int
	depth int  // length of the key prefix above x
	visit bool // lo subtree already scheduled
}

// collect appends, in order, the keys of the subtrie rooted at start that
// extend base. With a non-nil pattern only keys matching it are appended and
// base must be empty.
func (t *Trie[V]) collect(start int, base, pattern []rune, out []string) []string {
	if start == nilNode {
		return out
	}
	buf := append([]rune(nil), base...)
	stack := []frame{{x: start, depth: len(base)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := t.nodes[f.x]

		c, wild := rune(0), true
		if pattern != nil {
			c = pattern[f.depth]
			wild = c == Wildcard
		}

		if !f.visit {
			stack = append(stack, frame{x: f.x, depth: f.depth, visit: true})
			if nd.lo != nilNode && (wild || c < nd.c) {
				stack = append(stack, frame{x: nd.lo, depth: f.depth})
			}
			continue
		}

		// hi goes under mid so that mid is drained first
		if nd.hi != nilNode && (wild || c > nd.c) {
			stack = append(stack, frame{x: nd.hi, depth: f.depth})
		}
		if !wild && c != nd.c {
			continue
		}
		buf = append(buf[:f.depth], nd.c)
		more := pattern == nil || f.depth < len(pattern)-1
		if nd.has && (pattern == nil || !more) {
			out = append(out, string(buf))
		}
		if nd.mid != nilNode && more {
			stack = append(stack, frame{x: nd.mid, depth: f.depth + 1})
		}
	}
	return out
}
