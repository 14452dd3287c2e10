package command

import (
	"fmt"
	"os"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-sokoban/internal/levels"
	"github.com/pixil98/go-sokoban/internal/session"
	"github.com/pixil98/go-sokoban/internal/storage"
)

type LevelsConfig struct {
	Path string `json:"path"`
	// ReloadInterval re-reads Path periodically when set. New sessions pick
	// up the reloaded levels.
	ReloadInterval string `json:"reload_interval"`
	// Watch reloads as soon as an asset file under Path changes.
	Watch bool `json:"watch"`
}

func (c *LevelsConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("levels: path is required"))
	} else if _, err := os.Stat(c.Path); err != nil {
		el.Add(fmt.Errorf("levels: invalid path %q: %w", c.Path, err))
	}

	if c.ReloadInterval != "" {
		d, err := time.ParseDuration(c.ReloadInterval)
		if err != nil {
			el.Add(fmt.Errorf("levels: parsing reload_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("levels: reload_interval must be at least 1 second"))
		}
	}

	return el.Err()
}

// BuildStore loads every level asset under Path.
func (c *LevelsConfig) BuildStore() (*storage.FileStore[*levels.Level], error) {
	store, err := storage.NewFileStore[*levels.Level](c.Path)
	if err != nil {
		return nil, fmt.Errorf("creating level store: %w", err)
	}
	return store, nil
}

// BuildPool orders the levels in store for sessions.
func (c *LevelsConfig) BuildPool(store storage.Storer[*levels.Level]) ([]session.Level, error) {
	pool, err := levels.Pool(store)
	if err != nil {
		return nil, fmt.Errorf("building level pool: %w", err)
	}
	return pool, nil
}

// reloadInterval returns zero when reloading is off.
func (c *LevelsConfig) reloadInterval() (time.Duration, error) {
	if c.ReloadInterval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ReloadInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing reload_interval: %w", err)
	}
	return d, nil
}
