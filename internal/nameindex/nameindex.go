// Package nameindex maintains the bidirectional mapping between a
// catalog's numeric star identifiers and their proper names, with
// case-insensitive lookup, an optional localized overlay, and prefix
// completion.
//
// Grounded on internal/catalog/hipparcos.go's namedStars map (a
// lowercase-keyed name→HIP index built during catalog load), extended
// to the full contract of an index→name multimap plus i18n and Greek
// letter expansion.
package nameindex

import (
	"errors"
	"iter"
	"sort"
	"strings"
	"sync"
)

// ErrNameNotFound is returned when LookupByName finds no match in
// either the primary or localized index.
var ErrNameNotFound = errors.New("nameindex: name not found")

// greekAbbrev maps the three-letter Bayer-designation abbreviation for
// a Greek letter to its expanded form (e.g. "alf Ori" -> "Alpha Ori").
var greekAbbrev = map[string]string{
	"alf": "Alpha", "bet": "Beta", "gam": "Gamma", "del": "Delta",
	"eps": "Epsilon", "zet": "Zeta", "eta": "Eta", "the": "Theta",
	"iot": "Iota", "kap": "Kappa", "lam": "Lambda", "mu.": "Mu",
	"nu.": "Nu", "xi.": "Xi", "omi": "Omicron", "pi.": "Pi",
	"rho": "Rho", "sig": "Sigma", "tau": "Tau", "ups": "Upsilon",
	"phi": "Phi", "chi": "Chi", "psi": "Psi", "ome": "Omega",
}

// expandGreek rewrites a leading Bayer-style Greek abbreviation (e.g.
// "alf") in name to its full form (e.g. "Alpha"), leaving the
// remainder of the name untouched. Names with no recognized
// abbreviation pass through unchanged.
func expandGreek(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	if full, ok := greekAbbrev[strings.ToLower(fields[0])]; ok {
		fields[0] = full
		return strings.Join(fields, " ")
	}
	return name
}

// NameIndex is a bidirectional name<->index mapping. The zero value
// is not usable; construct with New. Safe for concurrent use.
type NameIndex struct {
	mu sync.RWMutex

	// byName maps a lowercased name to its index, comparator
	// case-insensitive per the contract.
	byName map[string]int
	// localizedByName is consulted first when a lookup requests i18n.
	localizedByName map[string]int
	// byIndex preserves insertion order of every name added for a
	// given index; byIndex[index][0] is the primary name.
	byIndex map[int][]string
}

// New returns an empty NameIndex.
func New() *NameIndex {
	return &NameIndex{
		byName:          make(map[string]int),
		localizedByName: make(map[string]int),
		byIndex:         make(map[int][]string),
	}
}

// Add associates name with index. When parseGreek is true, a leading
// Bayer-style Greek abbreviation in name is expanded before it is
// stored and indexed.
func (n *NameIndex) Add(index int, name string, parseGreek bool) {
	if parseGreek {
		name = expandGreek(name)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.byName[strings.ToLower(name)] = index
	n.byIndex[index] = append(n.byIndex[index], name)
}

// AddLocalized associates a localized display name with index,
// consulted by LookupByName and GetCompletion only when their i18n
// argument is true. It does not appear in IterateNamesForIndex or
// LookupByIndex, which report the primary (non-localized) names.
func (n *NameIndex) AddLocalized(index int, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localizedByName[strings.ToLower(name)] = index
}

// Erase removes every name, localized or not, associated with index.
func (n *NameIndex) Erase(index int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, name := range n.byIndex[index] {
		delete(n.byName, strings.ToLower(name))
	}
	delete(n.byIndex, index)

	for lname, idx := range n.localizedByName {
		if idx == index {
			delete(n.localizedByName, lname)
		}
	}
}

// LookupByName resolves name to its index, case-insensitively. When
// i18n is true the localized index is consulted first.
func (n *NameIndex) LookupByName(name string, i18n bool) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	key := strings.ToLower(name)
	if i18n {
		if idx, ok := n.localizedByName[key]; ok {
			return idx, nil
		}
	}
	if idx, ok := n.byName[key]; ok {
		return idx, nil
	}
	return 0, ErrNameNotFound
}

// LookupByIndex returns the primary (first-added) name for index, or
// "" if index has no names.
func (n *NameIndex) LookupByIndex(index int) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := n.byIndex[index]
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// IterateNamesForIndex returns a lazy sequence over every name
// associated with index, in insertion order.
func (n *NameIndex) IterateNamesForIndex(index int) iter.Seq[string] {
	return func(yield func(string) bool) {
		n.mu.RLock()
		names := append([]string(nil), n.byIndex[index]...)
		n.mu.RUnlock()

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// GetCompletion finds every name, primary and (when i18n is true)
// localized, whose lowercased form starts with prefix, and returns the
// primary name of each matching index once, sorted alphabetically; a
// match whose index has no primary name is returned in lowercase.
// When greekExpansion is true, prefix is first
// expanded the same way Add expands a stored name, so a prefix like
// "alf" matches names stored as "Alpha ...".
func (n *NameIndex) GetCompletion(prefix string, i18n bool, greekExpansion bool) []string {
	if greekExpansion {
		prefix = expandGreek(prefix)
	}
	key := strings.ToLower(prefix)

	n.mu.RLock()
	defer n.mu.RUnlock()

	seen := make(map[string]bool)
	var matches []string
	collect := func(m map[string]int) {
		for lname, idx := range m {
			if !strings.HasPrefix(lname, key) {
				continue
			}
			primary := firstName(n.byIndex[idx])
			if primary == "" {
				primary = lname
			}
			if seen[primary] {
				continue
			}
			seen[primary] = true
			matches = append(matches, primary)
		}
	}

	collect(n.byName)
	if i18n {
		collect(n.localizedByName)
	}

	sort.Strings(matches)
	return matches
}

// LocalizedNamesForIndex returns every localized name associated with
// index, in no particular order (localized names are not tracked in
// insertion order the way primary names are).
func (n *NameIndex) LocalizedNamesForIndex(index int) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var names []string
	for name, idx := range n.localizedByName {
		if idx == index {
			names = append(names, name)
		}
	}
	return names
}

func firstName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
