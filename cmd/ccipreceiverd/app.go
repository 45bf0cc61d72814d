package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pushchain/ccip-receiver/ccipreceiver/config"
	"github.com/pushchain/ccip-receiver/ccipreceiver/constant"
	"github.com/pushchain/ccip-receiver/ccipreceiver/db"
	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/keeper"
	"github.com/pushchain/ccip-receiver/ccipreceiver/ledger"
	"github.com/pushchain/ccip-receiver/ccipreceiver/logger"
	"github.com/pushchain/ccip-receiver/ccipreceiver/metrics"
)

// app holds the wired receiver components of one CLI invocation.
type app struct {
	cfg      config.Config
	logger   zerolog.Logger
	db       *db.DB
	ledger   *ledger.Ledger
	emitter  *events.Emitter
	registry *prometheus.Registry
	keeper   *keeper.Keeper
}

func newApp(ctx context.Context, home string) (*app, error) {
	cfg, err := config.Load(home)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Init(cfg)

	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	database, err := db.OpenFileDB(filepath.Join(cfg.NodeHome, constant.DatabasesSubdir), constant.DatabaseFileName, true)
	if err != nil {
		return nil, err
	}

	sinks, err := buildSinks(ctx, cfg.EventSinks, log)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	l := ledger.New(database.Client(), log)
	emitter := events.NewEmitter(log, sinks...)
	k, err := keeper.NewKeeper(database.Client(), params, l, emitter, metrics.New(registry), log)
	if err != nil {
		_ = emitter.Close()
		_ = database.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   log,
		db:       database,
		ledger:   l,
		emitter:  emitter,
		registry: registry,
		keeper:   k,
	}, nil
}

func (a *app) Close() error {
	return errors.Join(a.emitter.Close(), a.db.Close())
}

// buildSinks creates the event sinks enabled in cfg.
func buildSinks(ctx context.Context, cfg config.EventSinksConfig, log zerolog.Logger) ([]events.Sink, error) {
	var sinks []events.Sink
	if cfg.Log {
		sinks = append(sinks, events.NewLogSink(log))
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = rdb.Close()
			closeSinks(sinks)
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		sinks = append(sinks, events.NewRedisSink(rdb, cfg.Redis.Channel, cfg.Redis.ListKey, cfg.Redis.ListMaxLen))
	}

	if cfg.Kafka.Enabled {
		sink, err := events.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, nil)
		if err != nil {
			closeSinks(sinks)
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	return sinks, nil
}

func closeSinks(sinks []events.Sink) {
	for _, s := range sinks {
		_ = s.Close()
	}
}
