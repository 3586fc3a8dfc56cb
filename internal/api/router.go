package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"github.com/deva-sh/keepnotes/internal/accounts"
	"github.com/deva-sh/keepnotes/internal/api/handlers"
	"github.com/deva-sh/keepnotes/internal/api/middleware"
	"github.com/deva-sh/keepnotes/internal/config"
	"github.com/deva-sh/keepnotes/internal/notes"
)

func SetupRouter(accountsMgr *accounts.Manager, notesMgr *notes.Manager) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	authHandler := handlers.NewAuthHandler(accountsMgr)
	noteHandler := handlers.NewNoteHandler(notesMgr)
	requireAuth := middleware.Auth(accountsMgr)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.HandleFunc("/signup", authHandler.Signup)
	mux.HandleFunc("/login", authHandler.Login)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("/users/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("/notes", requireAuth(http.HandlerFunc(noteHandler.Collection)))
	mux.Handle("/notes/{id}", requireAuth(http.HandlerFunc(noteHandler.Item)))

	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
