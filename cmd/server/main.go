package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paperhub/internal/api"
	"paperhub/internal/config"
	"paperhub/internal/handlers"
	"paperhub/internal/middleware"
	"paperhub/internal/router"
	"paperhub/internal/viewstate"
	"paperhub/internal/widget"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// View state: Redis when configured, otherwise in-process LRU
	var states viewstate.Store
	health := map[string]handlers.Pinger{}
	if cfg.RedisURL != "" {
		rs, err := viewstate.NewRedisStore(cfg.RedisURL, cfg.ViewStateTTL)
		if err != nil {
			log.Fatalf("Failed to init redis view state: %v", err)
		}
		defer rs.Close()
		states = rs
		health["redis"] = rs
		log.Println("View state stored in redis")
	} else {
		ms, err := viewstate.NewMemoryStore(cfg.ViewStateCapacity, cfg.ViewStateTTL)
		if err != nil {
			log.Fatalf("Failed to init memory view state: %v", err)
		}
		states = ms
		log.Printf("View state kept in memory (capacity %d)", cfg.ViewStateCapacity)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	binder := widget.NewBinder(client, states)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.Env == "production",
	})
	r.Use(sessions.Sessions("paperhub_session", store))

	tmpl, err := router.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	r.HTMLRender = tmpl

	// Static Assets
	r.Static("/static", cfg.StaticDir)

	// Middleware
	r.Use(middleware.LoadViewer())
	r.Use(middleware.SiteContext(cfg.Env, cfg.SiteURL))

	router.RegisterRoutes(r, router.Deps{
		Backend: client,
		Binder:  binder,
		Health:  health,
	})

	log.Printf("PaperHub server starting on :%s (env %s, api %s)", cfg.Port, cfg.Env, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
