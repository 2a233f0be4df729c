package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Togss/esportsranker/internal/config"
	"github.com/Togss/esportsranker/internal/database"
	"github.com/Togss/esportsranker/internal/database/repository"
	"github.com/Togss/esportsranker/internal/prefs"
	"github.com/Togss/esportsranker/internal/service"
	"github.com/Togss/esportsranker/internal/session"
	"github.com/Togss/esportsranker/internal/testdata"
	"github.com/Togss/esportsranker/internal/tui"
)

func main() {
	seedDemo := flag.Bool("seed-demo", false, "seed a demo dataset on startup")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	deviceID, err := prefs.DeviceID()
	if err != nil {
		log.Printf("warn: device id: %v", err)
	}

	// repositories
	tournamentRepo := repository.NewTournamentRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	playerRepo := repository.NewPlayerRepo(db)

	// services
	loc := cfg.Location()
	tournaments := &service.TournamentService{
		Tournaments: tournamentRepo,
		Clock:       func() time.Time { return time.Now().In(loc) },
	}
	loader := &service.TournamentLoader{Source: tournamentRepo}
	maintenance := &service.MaintenanceService{DB: db}

	if *seedDemo {
		if err := testdata.Seed(ctx, testdata.Repos{
			Tournaments: tournamentRepo,
			Teams:       teamRepo,
			Players:     playerRepo,
		}); err != nil {
			log.Fatalf("seed demo: %v", err)
		}
	}

	// statuses drift while the app is closed; recompute on startup
	if changed, err := tournaments.RefreshStatuses(ctx); err != nil {
		log.Printf("warn: refresh statuses: %v", err)
	} else if changed > 0 {
		log.Printf("refreshed %d tournament statuses", changed)
	}

	store := session.NewStore(nil)

	// The TUI owns the terminal from here on, so diagnostics go to the
	// configured file.
	if logFile := openLogFile(cfg.Log.Path); logFile != nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("esportsranker starting: device=%s db=%s", deviceID, cfg.Database.Path)

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Repos{Tournaments: tournamentRepo, Teams: teamRepo, Players: playerRepo},
		tui.Services{Loader: loader, Tournaments: tournaments, Maintenance: maintenance},
		store,
		deviceID,
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openLogFile(path string) *os.File {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}
