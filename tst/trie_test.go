package tst

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shellsTrie(t *testing.T) *Trie[int] {
	t.Helper()
	tr := New[int]()
	for i, k := range []string{"she", "sells", "sea", "shells", "by", "the", "sea", "shore"} {
		require.NoError(t, tr.Put(k, i))
	}
	return tr
}

func TestTrie_PutGet(t *testing.T) {
	tr := shellsTrie(t)

	tests := []struct {
		key    string
		want   int
		wantOK bool
	}{
		{"she", 0, true},
		{"sea", 6, true}, // overwritten by the second insert
		{"shore", 7, true},
		{"sh", 0, false},
		{"shell", 0, false},
		{"shellsort", 0, false},
		{"zebra", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok, err := tr.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 7, tr.Len())
}

func TestTrie_EmptyKey(t *testing.T) {
	tr := shellsTrie(t)

	assert.ErrorIs(t, tr.Put("", 1), ErrEmptyKey)
	assert.ErrorIs(t, tr.Delete(""), ErrEmptyKey)

	_, _, err := tr.Get("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = tr.Contains("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = tr.LongestPrefixOf("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = tr.KeysWithPrefix("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	assert.Empty(t, tr.KeysThatMatch(""))
}

func TestTrie_ZeroValueUsable(t *testing.T) {
	var tr Trie[string]

	_, ok, err := tr.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tr.Keys())

	require.NoError(t, tr.Put("a", "x"))
	got, ok, err := tr.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", got)
}

func TestTrie_Delete(t *testing.T) {
	tr := shellsTrie(t)

	require.NoError(t, tr.Delete("shells"))
	_, ok, err := tr.Get("shells")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 6, tr.Len())

	// path is kept, the prefix key still resolves
	got, ok, err := tr.Get("she")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	// deleting twice or deleting an unknown key leaves the size alone
	require.NoError(t, tr.Delete("shells"))
	require.NoError(t, tr.Delete("nowhere"))
	assert.Equal(t, 6, tr.Len())

	// re-inserting a cleared key counts again
	require.NoError(t, tr.Put("shells", 42))
	assert.Equal(t, 7, tr.Len())
}

func TestTrie_LongestPrefixOf(t *testing.T) {
	tr := New[bool]()
	for _, k := range []string{"she", "shells", "shellsort"} {
		require.NoError(t, tr.Put(k, true))
	}

	tests := []struct {
		query string
		want  string
	}{
		{"shellsort", "shellsort"},
		{"shell", "she"},
		{"shellsorting", "shellsort"},
		{"shells", "shells"},
		{"sh", ""},
		{"quicksort", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := tr.LongestPrefixOf(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrie_KeysSorted(t *testing.T) {
	tr := shellsTrie(t)

	keys := tr.Keys()
	assert.Equal(t, []string{"by", "sea", "sells", "she", "shells", "shore", "the"}, keys)
	assert.Len(t, keys, tr.Len())
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestTrie_KeysWithPrefix(t *testing.T) {
	tr := shellsTrie(t)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"shor", []string{"shore"}},
		{"sh", []string{"she", "shells", "shore"}},
		{"she", []string{"she", "shells"}},
		{"s", []string{"sea", "sells", "she", "shells", "shore"}},
		{"x", nil},
		{"shorex", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := tr.KeysWithPrefix(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrie_KeysWithPrefixIsSubsetOfKeys(t *testing.T) {
	tr := shellsTrie(t)
	all := tr.Keys()

	for _, p := range []string{"s", "sh", "b", "the", "se"} {
		got, err := tr.KeysWithPrefix(p)
		require.NoError(t, err)

		var want []string
		for _, k := range all {
			if strings.HasPrefix(k, p) {
				want = append(want, k)
			}
		}
		assert.Equal(t, want, got, "prefix %q", p)
	}
}

func TestTrie_KeysThatMatch(t *testing.T) {
	tr := shellsTrie(t)

	tests := []struct {
		pattern string
		want    []string
	}{
		{".he.l.", []string{"shells"}},
		{"s..", []string{"sea", "she"}},
		{"...", []string{"sea", "she", "the"}},
		{"..", []string{"by"}},
		{"she", []string{"she"}},
		{"sh", nil},
		{"........", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.KeysThatMatch(tt.pattern))
		})
	}
}

func TestTrie_Unicode(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"Žilina", "Zagreb", "Århus", "Aachen"} {
		require.NoError(t, tr.Put(k, i))
	}

	assert.Equal(t, []string{"Aachen", "Zagreb", "Århus", "Žilina"}, tr.Keys())
	assert.Equal(t, []string{"Žilina"}, tr.KeysThatMatch(".ilina"))

	got, err := tr.KeysWithPrefix("Å")
	require.NoError(t, err)
	assert.Equal(t, []string{"Århus"}, got)
}

func TestTrie_LongKeysAndSortedInsertion(t *testing.T) {
	tr := New[int]()
	const n = 5000
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Put(fmt.Sprintf("%05d", i), i))
	}
	long := strings.Repeat("a", 20000)
	require.NoError(t, tr.Put(long, -1))

	keys := tr.Keys()
	require.Len(t, keys, n+1)
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Equal(t, long, keys[n])

	lp, err := tr.LongestPrefixOf(long + "b")
	require.NoError(t, err)
	assert.Equal(t, long, lp)
}

func TestTrie_Deterministic(t *testing.T) {
	tr := shellsTrie(t)
	first := tr.KeysThatMatch("s..")
	second := tr.KeysThatMatch("s..")
	assert.Equal(t, first, second)
}

func TestTrie_InvalidUTF8Rejected(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Put("a", 0))

	// "\xff" and "\xfe" would both decode to U+FFFD
	assert.ErrorIs(t, tr.Put("a\xff", 1), ErrInvalidKey)
	assert.ErrorIs(t, tr.Put("a\xfe", 2), ErrInvalidKey)
	assert.ErrorIs(t, tr.Delete("a\xff"), ErrInvalidKey)
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, []string{"a"}, tr.Keys())

	_, _, err := tr.Get("a\xff")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = tr.LongestPrefixOf("a\xffzz")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = tr.KeysWithPrefix("\xff")
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.Nil(t, tr.KeysThatMatch(".\xff"))

	// the replacement rune itself is a valid key
	require.NoError(t, tr.Put("a�", 3))
	got, ok, err := tr.Get("a�")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}
