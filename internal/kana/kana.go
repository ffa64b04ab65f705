// Package kana holds the static Hiragana practice table.
package kana

import (
	"strings"
)

// Entry is one practice character.
type Entry struct {
	Glyph   string
	Romaji  string
	Strokes int
}

// Group is a phonetic column or a yōon combination set, in display order.
type Group struct {
	Name    string
	Entries []Entry
}

// Title turns "k-column" into "K Column" and "k-combinations" into
// "K Combinations (Yōon)".
func (g Group) Title() string {
	words := strings.Split(g.Name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	title := strings.Join(words, " ")
	if g.IsCombination() {
		title = strings.Replace(title, "Combinations", "Combinations (Yōon)", 1)
	}
	return title
}

func (g Group) IsCombination() bool {
	return strings.HasSuffix(g.Name, "combinations")
}

// Chart is the ordered, read-only character table.
type Chart struct {
	groups []Group
}

// Default returns the full chart. Callers receive copies; the backing table
// never changes at runtime.
func Default() Chart {
	return Chart{groups: table}
}

func (c Chart) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = Group{Name: g.Name, Entries: append([]Entry(nil), g.Entries...)}
	}
	return out
}

// Lookup finds an entry by glyph.
func (c Chart) Lookup(glyph string) (Entry, bool) {
	for _, g := range c.groups {
		for _, e := range g.Entries {
			if e.Glyph == glyph {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func (c Chart) Len() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.Entries)
	}
	return n
}
