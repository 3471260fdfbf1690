package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	catalogyaml "farmstead/internal/adapter/catalog/yamlcat"
	httpadapter "farmstead/internal/adapter/http"
	metricsinmem "farmstead/internal/adapter/metrics/inmemory"
	gormrepo "farmstead/internal/adapter/repo/gorm"
	"farmstead/internal/adapter/repo/memory"
	"farmstead/internal/app/action"
	"farmstead/internal/app/leaderboard"
	"farmstead/internal/app/player"
	"farmstead/internal/app/ports"
	"farmstead/internal/app/replay"
	"farmstead/internal/app/tick"
	"farmstead/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cat := buildCatalogFromEnv()
	playerRepo, actionRepo, eventRepo, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CreatePlayerUC: player.CreateUseCase{
			TxManager:  txManager,
			PlayerRepo: playerRepo,
			EventRepo:  eventRepo,
			Catalog:    cat,
			Now:        time.Now,
		},
		GetPlayerUC: player.GetUseCase{
			PlayerRepo: playerRepo,
			Catalog:    cat,
			Now:        time.Now,
		},
		ActionUC: action.UseCase{
			TxManager:  txManager,
			PlayerRepo: playerRepo,
			ActionRepo: actionRepo,
			EventRepo:  eventRepo,
			Catalog:    cat,
			Metrics:    kpiRecorder,
			Now:        time.Now,
		},
		ReplayUC:      replay.UseCase{Events: eventRepo},
		LeaderboardUC: leaderboard.UseCase{PlayerRepo: playerRepo},
		KPI:           kpiRecorder,
	}

	sweeper := tick.UseCase{
		TxManager:  txManager,
		PlayerRepo: playerRepo,
		Now:        time.Now,
	}
	go runTicker(sweeper)

	addr := strings.TrimSpace(os.Getenv("FARMSTEAD_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("farmstead server listening on %s", addr)
	s.Spin()
}

// runTicker drives the readiness sweep at the configured cadence. The
// sweep is idempotent, so a missed or doubled tick is harmless.
func runTicker(sweeper tick.UseCase) {
	interval := time.Duration(intEnv("FARMSTEAD_TICK_SECONDS", 1)) * time.Second
	if interval <= 0 {
		log.Println("tick sweep disabled")
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		report, err := sweeper.SweepAll(context.Background())
		if err != nil {
			log.Printf("tick sweep: %v", err)
			continue
		}
		if report.PlayersChanged > 0 {
			log.Printf("tick sweep: %d/%d players updated", report.PlayersChanged, report.PlayersSwept)
		}
	}
}

func mustBuildRepos() (ports.PlayerRepository, ports.ActionExecutionRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("FARMSTEAD_DB_DSN"))
	if dsn == "" {
		log.Println("FARMSTEAD_DB_DSN not set, using in-memory storage")
		store := memory.NewStore()
		return memory.NewPlayerRepo(store), memory.NewActionExecutionRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	migrationsDir := strings.TrimSpace(os.Getenv("FARMSTEAD_MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewPlayerRepo(db), gormrepo.NewActionExecutionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func buildCatalogFromEnv() farm.Catalog {
	path := strings.TrimSpace(os.Getenv("FARMSTEAD_CATALOG"))
	if path == "" {
		return farm.DefaultCatalog()
	}
	cat, err := catalogyaml.Load(path)
	if err != nil {
		log.Fatalf("load catalog %s: %v", path, err)
	}
	return cat
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
