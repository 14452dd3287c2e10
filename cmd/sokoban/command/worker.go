package command

import (
	"fmt"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-sokoban/internal/commands"
	"github.com/pixil98/go-sokoban/internal/driver"
	"github.com/pixil98/go-sokoban/internal/levels"
	"github.com/pixil98/go-sokoban/internal/listener"
	"github.com/pixil98/go-sokoban/internal/metrics"
	"github.com/pixil98/go-sokoban/internal/player"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	store, err := cfg.Levels.BuildStore()
	if err != nil {
		return nil, err
	}
	pool, err := cfg.Levels.BuildPool(store)
	if err != nil {
		return nil, err
	}

	sessionOpts, err := cfg.Session.sessionOpts()
	if err != nil {
		return nil, err
	}

	workers := service.WorkerList{}
	pmOpts := []player.ManagerOpt{player.WithSessionOpts(sessionOpts...)}

	if cfg.Nats.Enabled {
		natsServer, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = natsServer
		pmOpts = append(pmOpts, player.WithPublisher(natsServer))
	}

	if cfg.Metrics.enabled() {
		m := metrics.New()
		workers["metrics"] = cfg.Metrics.buildServer(m)
		pmOpts = append(pmOpts, player.WithMetrics(m))
	}

	pm, err := player.NewManager(pool, commands.NewHandler(), pmOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating player manager: %w", err)
	}
	workers["players"] = pm

	interval, err := cfg.Levels.reloadInterval()
	if err != nil {
		return nil, err
	}
	reloader := levels.NewReloader(store, pm)
	if interval > 0 {
		workers["driver"] = driver.NewDriver(
			[]driver.Ticker{reloader, pm},
			driver.WithTickLength(interval),
		)
	}
	if cfg.Levels.Watch {
		workers["level-watcher"] = levels.NewWatcher(cfg.Levels.Path, reloader, levels.DefaultDebounce)
	}

	cm := listener.NewConnectionManager(pm)
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		workers[fmt.Sprintf("listener-%d-%s", i, l.Protocol)] = w
	}

	return workers, nil
}
