package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"workout-core/config"
	"workout-core/internal/classes"
	"workout-core/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg *config.Config

	// db is nil in local mode; domains then run on in-memory stores.
	db *sqlx.DB

	// calendar is nil when no credentials are configured.
	calendar classes.Calendar
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger   log.Logger
	Cfg      *config.Config
	DB       *sqlx.DB
	Calendar classes.Calendar
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Cfg != nil {
		gin.SetMode(cfg.Cfg.HTTPServer.Mode)
	}

	srv := &HTTPServer{
		l:        cfg.Logger,
		gin:      gin.New(),
		cfg:      cfg.Cfg,
		db:       cfg.DB,
		calendar: cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	if srv.cfg.HTTPServer.Port == 0 {
		return errors.New("port is required")
	}
	return nil
}
