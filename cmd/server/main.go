package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/deva-sh/keepnotes/internal/accounts"
	"github.com/deva-sh/keepnotes/internal/api"
	"github.com/deva-sh/keepnotes/internal/auth"
	"github.com/deva-sh/keepnotes/internal/config"
	"github.com/deva-sh/keepnotes/internal/notes"
	"github.com/deva-sh/keepnotes/internal/repositories"
)

func main() {
	db, err := repositories.Connect(config.Envs.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Successfully connected to database")

	issuer := auth.NewTokenIssuer(config.MustJWTSecret(), config.Envs.TokenTTL)
	accountsMgr := accounts.NewManager(repositories.NewUserStore(db), issuer)
	notesMgr := notes.NewManager(repositories.NewNoteStore(db))

	if config.Envs.SeedDemoUser {
		if err := accountsMgr.EnsureDemoUser(); err != nil {
			log.Fatal("Demo user seed failed:", err)
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: api.SetupRouter(accountsMgr, notesMgr),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Keep Notes server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
