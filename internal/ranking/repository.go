package ranking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/appengine-ltd/podo-rush/internal/store"
)

// Repository is one game's leaderboard. Read failures never surface: a
// missing or unreadable list is an empty list.
type Repository struct {
	kv     store.KV
	game   Game
	logger *slog.Logger
}

func NewRepository(kv store.KV, game Game, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{kv: kv, game: game, logger: logger.With("ranking", game.Slug)}
}

func (r *Repository) Game() Game { return r.game }

// Load returns the list sorted ascending by time.
func (r *Repository) Load(ctx context.Context) []Entry {
	entries, err := r.read(ctx)
	if err != nil {
		r.logger.Warn("read rankings", "error", err)
		return []Entry{}
	}
	return entries
}

// read treats a missing or malformed list as empty and reports any other
// backend failure.
func (r *Repository) read(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := store.GetJSON(ctx, r.kv, r.game.Key, &entries)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return []Entry{}, nil
	case errors.Is(err, store.ErrMalformed):
		r.logger.Debug("discarding malformed rankings", "error", err)
		return []Entry{}, nil
	case err != nil:
		return nil, err
	}
	if entries == nil {
		return []Entry{}, nil
	}
	sortEntries(entries)
	return entries, nil
}

// Insert appends the entry, re-sorts and persists the list. Equal times keep
// insertion order. A failed read aborts before anything is written.
func (r *Repository) Insert(ctx context.Context, e Entry) ([]Entry, error) {
	entries, err := r.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read rankings: %w", err)
	}
	entries = append(entries, e)
	sortEntries(entries)
	if err := store.SetJSON(ctx, r.kv, r.game.Key, toWire(r.game, entries)); err != nil {
		return entries, fmt.Errorf("save rankings: %w", err)
	}
	r.logger.Info("ranking recorded", "name", e.Name, "time_ms", e.Time, "entries", len(entries))
	return entries, nil
}

func (r *Repository) Record(ctx context.Context, name string, elapsed time.Duration) error {
	_, err := r.Insert(ctx, NewEntry(name, elapsed))
	return err
}

// IsTaken reports whether any stored entry has the same folded name.
func (r *Repository) IsTaken(ctx context.Context, name string) bool {
	want := FoldName(name)
	if want == "" {
		return false
	}
	return slices.ContainsFunc(r.Load(ctx), func(e Entry) bool {
		return FoldName(e.Name) == want
	})
}

func (r *Repository) LastName(ctx context.Context) string {
	data, err := r.kv.Get(ctx, r.game.LastNameKey)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (r *Repository) SetLastName(ctx context.Context, name string) error {
	if err := r.kv.Set(ctx, r.game.LastNameKey, []byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("save last name: %w", err)
	}
	return nil
}

// Reset forgets the list and the last name.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.kv.Remove(ctx, r.game.Key); err != nil {
		return fmt.Errorf("reset rankings: %w", err)
	}
	if err := r.kv.Remove(ctx, r.game.LastNameKey); err != nil {
		return fmt.Errorf("reset last name: %w", err)
	}
	r.logger.Info("rankings reset")
	return nil
}

// View loads the list and returns the requested page with highlights.
func (r *Repository) View(ctx context.Context, page, size int) View {
	return BuildView(r.Load(ctx), page, size, r.LastName(ctx))
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Time, b.Time)
	})
}
