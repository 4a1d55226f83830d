package text

import (
	"maps"
	"strings"

	"dario.cat/mergo"
)

// Replacements is a case-insensitive phrase dictionary. Keys are matched
// ignoring case, values are inserted verbatim.
type Replacements map[string]string

// Apply rewrites all occurrences of every dictionary key within the given
// text. Matching continues after each inserted value, so a value which
// contains its own key does not loop forever.
func (this Replacements) Apply(text string) string {
	result := text
	for from, to := range this {
		if from == "" {
			continue
		}
		lowerFrom := strings.ToLower(from)
		i := 0
		for {
			pos := strings.Index(strings.ToLower(result[i:]), lowerFrom)
			if pos < 0 {
				break
			}
			abs := i + pos
			result = result[:abs] + to + result[abs+len(from):]
			i = abs + len(to)
		}
	}
	return result
}

// MergedOver lays this dictionary over the given base. Entries of this
// dictionary win over entries of base with the same key, empty values
// included. Both inputs stay untouched.
func (this Replacements) MergedOver(base Replacements) Replacements {
	result := maps.Clone(base)
	if result == nil {
		result = make(Replacements, len(this))
	}
	// Cannot fail for two non-nil maps of the same type.
	_ = mergo.Merge(&result, this, mergo.WithOverride)
	return result
}
