package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/blackwell-systems/libcat/internal/repository"
	"github.com/google/uuid"
)

// parseID parses a command-line id for the given entity kind.
func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", kind, raw, err)
	}
	return id, nil
}

// lookup resolves raw to a cached entity, failing with *entity.NotFoundError
// when the id is well formed but unknown.
func lookup[E entity.Entity](r *repository.Repository[E], kind, raw string) (E, error) {
	var zero E
	id, err := parseID(kind, raw)
	if err != nil {
		return zero, err
	}
	e, ok := r.FindByID(id)
	if !ok {
		return zero, &entity.NotFoundError{Kind: kind, ID: id}
	}
	return e, nil
}

// lookupCategory accepts an id or an exact category name.
func lookupCategory(ref string) (*entity.Category, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return lookup(repos.Categories().Repository, "category", ref)
	}
	if c, ok := repos.Categories().FindByName(ref); ok {
		return c, nil
	}
	return nil, fmt.Errorf("category %q: %w", ref, entity.ErrNotFound)
}

// optionalID parses raw when set; an empty string yields uuid.Nil.
func optionalID(kind, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return parseID(kind, raw)
}

// filterIf narrows items with keep only when active.
func filterIf[E any](items []E, active bool, keep func(E) bool) []E {
	if !active {
		return items
	}
	var out []E
	for _, e := range items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// nonEmpty keeps JSON output an array even when nothing matched.
func nonEmpty[E any](items []E) []E {
	if items == nil {
		return []E{}
	}
	return items
}
