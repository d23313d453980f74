package main

import (
	"time"

	"github.com/dmitrymomot/newsletter/pkg/db"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	redisx "github.com/dmitrymomot/newsletter/pkg/redis"
	"github.com/dmitrymomot/newsletter/pkg/storage"
)

// Store backends selectable with PROJECT_STORE.
const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

// Config is the environment of the serve command.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ProjectStore  string        `env:"PROJECT_STORE" envDefault:"memory"`
	StorePrefix   string        `env:"PROJECT_STORE_PREFIX" envDefault:"newsletter"`
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY" envDefault:"800ms"`

	MailFrom     string `env:"MAIL_FROM" envDefault:"newsletter@porr.pl"`
	MailTo       string `env:"MAIL_TO" envDefault:"recipient@example.com"`
	SupportEmail string `env:"SUPPORT_EMAIL" envDefault:"komunikacja@porr.pl"`

	Log     logger.Config
	DB      db.Config
	Redis   redisx.Config
	Storage storage.Config
}
