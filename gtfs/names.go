package gtfs

import "strings"

// NameRules describes how stop names are normalized before they are indexed
// for search
type NameRules struct {
	UpperCase      bool
	DirectionFlags []string // leading words moved to the end, e.g. "WB"
}

// DefaultNameRules upper-cases names and relocates NB/SB/EB/WB prefixes
func DefaultNameRules() NameRules {
	return NameRules{
		UpperCase:      true,
		DirectionFlags: []string{"NB", "SB", "EB", "WB"},
	}
}

// Normalize rewrites a raw stop name so that "WB HASTINGS ST FS HOLDOM AVE"
// becomes "HASTINGS ST FS HOLDOM AVE WB". Several leading flags are moved in
// order. Whitespace runs collapse to one space.
func (r NameRules) Normalize(name string) string {
	words := strings.Fields(name)
	if r.UpperCase {
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
	}
	lead := 0
	for lead < len(words)-1 && r.isFlag(words[lead]) {
		lead++
	}
	if lead > 0 {
		words = append(words[lead:], words[:lead]...)
	}
	return strings.Join(words, " ")
}

// NormalizeQuery applies the case rule to a search prefix or pattern without
// moving flags, so a user can type the start of a street name.
func (r NameRules) NormalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if r.UpperCase {
		q = strings.ToUpper(q)
	}
	return q
}

func (r NameRules) isFlag(w string) bool {
	for _, f := range r.DirectionFlags {
		if strings.EqualFold(w, f) {
			return true
		}
	}
	return false
}
