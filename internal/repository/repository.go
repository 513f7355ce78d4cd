// Package repository presents each per-type JSON file as an in-memory set of
// entities, and groups the six sets behind a Factory that alone writes them
// back to disk.
//
// Repositories never touch their file after the initial load. Between
// commits the cache is the only source of truth; anything not committed is
// lost when the process exits.
package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository caches every entity of one type keyed by ID. Insertion order is
// kept so committed files are stable.
type Repository[E entity.Entity] struct {
	path  string
	log   *zap.Logger
	items map[uuid.UUID]E
	order []uuid.UUID
}

// Open loads the repository backed by path, creating an empty file if it does
// not exist yet.
//
// Content that is not exactly one well-formed JSON array of E is treated as
// no data: the cache starts empty and a warning is logged. This recovery is
// lossy; the next commit overwrites the unreadable file.
func Open[E entity.Entity](path string, log *zap.Logger) (*Repository[E], error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Repository[E]{
		path:  path,
		log:   log.With(zap.String("file", filepath.Base(path))),
		items: make(map[uuid.UUID]E),
	}

	data, err := readOrCreate(path)
	if err != nil {
		return nil, err
	}
	for _, e := range r.decode(data) {
		r.put(e)
	}
	r.log.Debug("repository loaded", zap.Int("entities", len(r.order)))
	return r, nil
}

func readOrCreate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &FileError{Op: "read", File: filepath.Base(path), Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &FileError{Op: "create", File: filepath.Base(path), Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &FileError{Op: "create", File: filepath.Base(path), Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &FileError{Op: "create", File: filepath.Base(path), Err: err}
	}
	return nil, nil
}

// decode applies the lenient-load policy.
func (r *Repository[E]) decode(data []byte) []E {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if !json.Valid(data) {
		r.log.Warn("malformed JSON, starting with an empty cache")
		return nil
	}
	var items []E
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("unexpected JSON shape, starting with an empty cache", zap.Error(err))
		return nil
	}
	out := items[:0]
	for _, e := range items {
		if isNil(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isNil[E any](e E) bool {
	var zero E
	return any(e) == any(zero)
}

// Path returns the backing file.
func (r *Repository[E]) Path() string { return r.path }

// Len returns the number of cached entities.
func (r *Repository[E]) Len() int { return len(r.order) }

// FindByID returns the entity with the given ID.
func (r *Repository[E]) FindByID(id uuid.UUID) (E, bool) {
	e, ok := r.items[id]
	return e, ok
}

// FindAll returns the cached entities in insertion order. The slice is new
// but the entities are the cached instances: mutating one mutates the cache.
func (r *Repository[E]) FindAll() []E {
	out := make([]E, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// FindAllFunc returns the entities for which keep reports true.
func (r *Repository[E]) FindAllFunc(keep func(E) bool) []E {
	var out []E
	for _, id := range r.order {
		if e := r.items[id]; keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// findFirst returns the first entity, in insertion order, matching keep.
func (r *Repository[E]) findFirst(keep func(E) bool) (E, bool) {
	for _, id := range r.order {
		if e := r.items[id]; keep(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Add upserts e: any cached entity with the same ID is dropped and e is
// appended. No validation is performed here.
func (r *Repository[E]) Add(e E) E {
	r.drop(e.ID())
	r.put(e)
	return e
}

// Remove drops the entity whose ID equals e's. It reports whether anything
// was removed.
func (r *Repository[E]) Remove(e E) bool {
	return r.drop(e.ID())
}

func (r *Repository[E]) put(e E) {
	id := e.ID()
	if _, exists := r.items[id]; exists {
		r.drop(id)
	}
	r.items[id] = e
	r.order = append(r.order, id)
}

func (r *Repository[E]) drop(id uuid.UUID) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// encode renders the cache as an indented JSON array. An empty cache
// encodes as [].
func (r *Repository[E]) encode() ([]byte, error) {
	data, err := json.MarshalIndent(r.FindAll(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
