/*
Package tst provides a ternary search trie keyed by strings.

Each node holds one rune and three links: lo (runes less than this one at the
same depth), hi (greater) and mid (the next rune of keys sharing this prefix).
Nodes live in an arena slice and link to each other by index, so the trie can
be walked without recursion and grows with a single allocation pattern.

# Basic Usage

	t := tst.New[string]()
	_ = t.Put("SHELLS", "1001")
	_ = t.Put("SHE", "1002")

	v, ok, _ := t.Get("SHE")            // "1002", true
	lp, _ := t.LongestPrefixOf("SHELL") // "SHE"
	ks, _ := t.KeysWithPrefix("SH")     // [SHE SHELLS]
	ms := t.KeysThatMatch(".HE")        // [SHE]

Keys are compared rune by rune, which for valid UTF-8 gives the same order as
comparing the encoded bytes. The trie is case sensitive and performs no
normalization.

A Trie is not safe for concurrent mutation. Once built it may be read from
several goroutines.
*/
package tst
