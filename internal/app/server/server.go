package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hradmin/internal/domain/auth"
	"hradmin/internal/domain/history"
	"hradmin/internal/domain/place"
	"hradmin/internal/domain/section"
	"hradmin/internal/domain/staff"
	"hradmin/internal/platform/config"
	"hradmin/internal/platform/db"
	authhandler "hradmin/internal/transport/http/handlers/auth"
	employeehandler "hradmin/internal/transport/http/handlers/employee"
	hrhandler "hradmin/internal/transport/http/handlers/hr"
	managerhandler "hradmin/internal/transport/http/handlers/manager"
	"hradmin/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	router := NewRouter(cfg, pool)

	log.Printf("hradmin server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter wires middleware and handlers; split out so tests can mount it.
func NewRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	authStore := auth.NewStore(pool)
	staffStore := staff.NewStore(pool)
	sectionStore := section.NewStore(pool)
	placeStore := place.NewStore(pool)
	historyStore := history.NewStore(pool)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		employeehandler.NewHandler(staffStore).RegisterRoutes(r)
		managerhandler.NewHandler(staffStore).RegisterRoutes(r)
		hrhandler.NewHandler(staffStore, sectionStore, placeStore, historyStore).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return router
}

// spaHandler serves the single-page frontend, falling back to index.html so
// client-side routes like /hr/dashboard resolve after a reload.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
