package levels

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-sokoban/internal/session"
	"github.com/pixil98/go-sokoban/internal/storage"
)

// ReloadableStore is a level store that can re-read its source.
type ReloadableStore interface {
	storage.Storer[*Level]
	Reload() error
}

// PoolSetter receives a freshly loaded level pool.
type PoolSetter interface {
	SetLevels([]session.Level) error
}

// Reloader re-reads level assets on every tick and hands the new pool on.
// A broken asset is logged and the previous pool stays in use.
type Reloader struct {
	store  ReloadableStore
	target PoolSetter
}

func NewReloader(store ReloadableStore, target PoolSetter) *Reloader {
	return &Reloader{store: store, target: target}
}

func (r *Reloader) Tick(ctx context.Context) error {
	if err := r.store.Reload(); err != nil {
		slog.WarnContext(ctx, "reloading levels, keeping previous set", "error", err)
		return nil
	}

	pool, err := Pool(r.store)
	if err != nil {
		slog.WarnContext(ctx, "building level pool, keeping previous set", "error", err)
		return nil
	}

	if err := r.target.SetLevels(pool); err != nil {
		return err
	}
	slog.DebugContext(ctx, "levels reloaded", "count", len(pool))
	return nil
}
