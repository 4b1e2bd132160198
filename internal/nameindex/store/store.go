// Package store snapshots and restores a nameindex.NameIndex through
// the teacher's database.Database interface, so the index can persist
// across process restarts without nameindex itself depending on any
// storage technology.
//
// Grounded on internal/catalog/hipparcos.go's load/save shape, adapted
// to database.Database's GetJSON/SetJSON contract rather than
// hipparcos.go's direct os.Open/gzip file I/O.
package store

import (
	"context"
	"fmt"

	"github.com/starcore/astrocore/internal/database"
	"github.com/starcore/astrocore/internal/nameindex"
)

// snapshotKey is the single database key a NameIndex is stored under.
const snapshotKey = "nameindex:snapshot"

// entry is the JSON-serializable form of one index's names.
type entry struct {
	Index      int      `json:"index"`
	Names      []string `json:"names"`
	LocalNames []string `json:"local_names,omitempty"`
}

// Store persists a nameindex.NameIndex snapshot in a database.Database.
type Store struct {
	db database.Database
}

// New returns a Store backed by db.
func New(db database.Database) *Store {
	return &Store{db: db}
}

// Save serializes the names in idx of each index listed in indices
// and writes them to the database as a single snapshot. Indices not
// listed, or with no primary name, are left out.
func (s *Store) Save(ctx context.Context, idx *nameindex.NameIndex, indices []int) error {
	entries := make([]entry, 0, len(indices))
	for _, i := range indices {
		var names []string
		for name := range idx.IterateNamesForIndex(i) {
			names = append(names, name)
		}
		if len(names) == 0 {
			continue
		}
		entries = append(entries, entry{
			Index:      i,
			Names:      names,
			LocalNames: idx.LocalizedNamesForIndex(i),
		})
	}

	if err := s.db.SetJSON(ctx, snapshotKey, entries); err != nil {
		return fmt.Errorf("nameindex/store: save snapshot: %w", err)
	}
	return nil
}

// Load rebuilds a NameIndex from the most recently saved snapshot. It
// returns database.ErrNotFound if no snapshot has ever been saved.
func (s *Store) Load(ctx context.Context) (*nameindex.NameIndex, error) {
	var entries []entry
	if err := s.db.GetJSON(ctx, snapshotKey, &entries); err != nil {
		return nil, fmt.Errorf("nameindex/store: load snapshot: %w", err)
	}

	idx := nameindex.New()
	for _, e := range entries {
		for _, name := range e.Names {
			idx.Add(e.Index, name, false)
		}
		for _, name := range e.LocalNames {
			idx.AddLocalized(e.Index, name)
		}
	}
	return idx, nil
}

// Exists reports whether a snapshot has been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	ok, err := s.db.Exists(ctx, snapshotKey)
	if err != nil {
		return false, fmt.Errorf("nameindex/store: check snapshot: %w", err)
	}
	return ok, nil
}

// Delete removes any saved snapshot.
func (s *Store) Delete(ctx context.Context) error {
	if err := s.db.Delete(ctx, snapshotKey); err != nil {
		return fmt.Errorf("nameindex/store: delete snapshot: %w", err)
	}
	return nil
}
