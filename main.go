package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mbolis/form-weaver/ai"
	"github.com/mbolis/form-weaver/app"
	"github.com/mbolis/form-weaver/config"
	"github.com/mbolis/form-weaver/database"
	"github.com/mbolis/form-weaver/httpx"
	"github.com/mbolis/form-weaver/log"
	"github.com/mbolis/form-weaver/routes"
	"github.com/mbolis/form-weaver/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	st := store.New(db)
	err = st.SeedTemplates(context.Background())
	if err != nil {
		log.Fatal("main.templates.seed:", err)
	}

	var generator ai.TextGenerator
	if cfg.AIApiKey != "" {
		generator = ai.NewOpenAIGenerator(cfg.AIApiKey, cfg.AIBaseUrl, cfg.AIModel)
	} else {
		log.Warn("AI drafting disabled: no API key configured, prompts will use blueprints only")
	}

	app := app.App{
		DB:           db,
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
		Store:        st,
		AI:           ai.NewPipeline(generator),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
