package main

import (
	"context"
	"errors"
	"log"
	"time"

	staticcatalog "gravehold/internal/adapter/catalog/static"
	httpadapter "gravehold/internal/adapter/http"
	metricsinmem "gravehold/internal/adapter/metrics/inmemory"
	gormrepo "gravehold/internal/adapter/repo/gorm"
	"gravehold/internal/adapter/repo/memory"
	"gravehold/internal/app/crafting"
	"gravehold/internal/app/inventory"
	"gravehold/internal/app/observe"
	"gravehold/internal/app/ports"
	"gravehold/internal/app/replay"
	"gravehold/internal/app/trade"
	"gravehold/internal/config"
	"gravehold/internal/domain/economy"
	"gravehold/internal/logger"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const demoPlayerID = "demo-player"
const demoVendorID = "demo-vendor"

const demoCarriedCap = 25
const demoStashCap = 50
const demoStartingCurrency = 500

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the engine's HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("load configuration: %v", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		catalog, err := staticcatalog.Load(cfg.Catalog.Path)
		if err != nil {
			logg.Fatal("load item catalog", zap.Error(err))
		}

		repos := mustBuildRepos(logg, cfg, catalog)
		seedDemoData(logg, repos, catalog)
		kpiRecorder := metricsinmem.NewRecorder()

		h := httpadapter.Handler{
			ObserveUC: observe.UseCase{StateRepo: repos.states, Catalog: catalog},
			InventoryUC: inventory.UseCase{
				TxManager: repos.tx,
				StateRepo: repos.states,
				EventRepo: repos.events,
				Catalog:   catalog,
				Now:       time.Now,
			},
			CraftUC: crafting.UseCase{
				TxManager: repos.tx,
				StateRepo: repos.states,
				ExecRepo:  repos.executions,
				EventRepo: repos.events,
				Catalog:   catalog,
				Metrics:   kpiRecorder,
				Craft:     economy.CraftingService{},
				Now:       time.Now,
			},
			TradeUC: trade.UseCase{
				TxManager:  repos.tx,
				StateRepo:  repos.states,
				VendorRepo: repos.vendors,
				ExecRepo:   repos.executions,
				EventRepo:  repos.events,
				Catalog:    catalog,
				Metrics:    kpiRecorder,
				Trade:      economy.TradeService{},
				Now:        time.Now,
			},
			ReplayUC: replay.UseCase{Events: repos.events},
			KPI:      kpiRecorder,
		}

		s := server.Default(server.WithHostPorts(cfg.Server.Addr))
		h.RegisterRoutes(s)

		logg.Info("gravehold server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("demo_player", demoPlayerID))
		s.Spin()
	},
}

type repoSet struct {
	states     ports.PlayerStateRepository
	vendors    ports.VendorRepository
	executions ports.ExecutionRepository
	events     ports.EventRepository
	tx         ports.TxManager
}

func mustBuildRepos(logg *zap.Logger, cfg *config.Config, catalog economy.Catalog) repoSet {
	if cfg.Database.DSN == "" {
		logg.Warn("no database dsn configured, falling back to in-memory repositories")
		store := memory.NewStore()
		return repoSet{
			states:     memory.NewPlayerStateRepo(store),
			vendors:    memory.NewVendorRepo(store),
			executions: memory.NewExecutionRepo(store),
			events:     memory.NewEventRepo(store),
			tx:         memory.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		logg.Fatal("open postgres", zap.Error(err))
	}
	return repoSet{
		states:     gormrepo.NewPlayerStateRepo(db, catalog),
		vendors:    gormrepo.NewVendorRepo(db),
		executions: gormrepo.NewExecutionRepo(db),
		events:     gormrepo.NewEventRepo(db),
		tx:         gormrepo.NewTxManager(db),
	}
}

func seedDemoData(logg *zap.Logger, repos repoSet, catalog economy.Catalog) {
	ctx := context.Background()

	_, err := repos.states.GetByPlayerID(ctx, demoPlayerID)
	if err != nil && errors.Is(err, ports.ErrNotFound) {
		seed := economy.PlayerState{
			PlayerID:  demoPlayerID,
			Carried:   economy.NewContainer(demoCarriedCap, catalog),
			Stash:     economy.NewContainer(demoStashCap, catalog),
			Purse:     economy.NewLedger(demoStartingCurrency),
			Version:   1,
			UpdatedAt: time.Now(),
		}
		if saveErr := repos.states.SaveWithVersion(ctx, seed, 0); saveErr != nil {
			logg.Fatal("seed demo player (did you run SQL migrations?)", zap.Error(saveErr))
		}
	} else if err != nil {
		logg.Fatal("load demo player (did you run SQL migrations?)", zap.Error(err))
	}

	offers := []economy.Offer{
		{Item: "herb", Price: 4, InfiniteStock: true},
		{Item: "ore", Price: 10, InfiniteStock: true},
		{Item: "potion", Price: 40, Stock: 12},
		{Item: "sword", Price: 180, Stock: 2},
	}
	for _, offer := range offers {
		if _, ok := catalog.Resolve(offer.Item); !ok {
			continue
		}
		if _, err := repos.vendors.GetOffer(ctx, demoVendorID, offer.Item); err == nil {
			continue
		}
		if err := repos.vendors.SaveOffer(ctx, demoVendorID, offer); err != nil {
			logg.Fatal("seed demo vendor", zap.Error(err))
		}
	}
}
