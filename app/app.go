package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/mbolis/form-weaver/ai"
	"github.com/mbolis/form-weaver/config"
	"github.com/mbolis/form-weaver/store"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config
	Store *store.Store
	AI    *ai.Pipeline
}
