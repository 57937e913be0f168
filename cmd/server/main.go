package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "redscope/internal/adapter/http"
	imagesource "redscope/internal/adapter/memory/image"
	mocksource "redscope/internal/adapter/memory/mock"
	gormrepo "redscope/internal/adapter/repo/gorm"
	memoryrepo "redscope/internal/adapter/repo/memory"
	"redscope/internal/app/extract"
	"redscope/internal/app/ports"
	"redscope/internal/app/query"
	"redscope/internal/app/replay"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	snapshots := buildSnapshotRepoFromEnv()
	memory := buildMemorySourceFromEnv()

	extractUC := extract.UseCase{
		Memory:    memory,
		Snapshots: snapshots,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		ExtractUC: extractUC,
		QueryUC:   query.UseCase{Extract: extractUC},
		ReplayUC:  replay.UseCase{Snapshots: snapshots},
	}

	addr := strEnv("REDSCOPE_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("redscope server listening on %s", addr)
	s.Spin()
}

func buildSnapshotRepoFromEnv() ports.SnapshotRepository {
	dsn := strings.TrimSpace(os.Getenv("REDSCOPE_DB_DSN"))
	if dsn == "" {
		log.Println("REDSCOPE_DB_DSN not set, keeping snapshots in memory")
		return memoryrepo.NewSnapshotRepo()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	migrationsDir := strEnv("REDSCOPE_MIGRATIONS_DIR", "./migrations")
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewSnapshotRepo(db)
}

func buildMemorySourceFromEnv() ports.MemorySource {
	path := strings.TrimSpace(os.Getenv("REDSCOPE_MEMORY_IMAGE"))
	if path == "" {
		log.Println("REDSCOPE_MEMORY_IMAGE not set, serving a zeroed memory image")
		return mocksource.New()
	}

	base := uint16(intEnv("REDSCOPE_MEMORY_BASE", 0xC000))
	src, err := imagesource.NewFromFile(path, base)
	if err != nil {
		log.Fatalf("load memory image %s: %v", path, err)
	}
	return src
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 0, 32)
	if err != nil {
		return fallback
	}
	return int(n)
}
