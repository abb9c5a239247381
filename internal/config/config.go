package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// APIURL is the base URL of the restaurant backend, e.g. "https://api.bodegon.ar/api/".
	APIURL string `env:"API_URL"`

	// CredsDir overrides the directory holding the auth token and the
	// remembered username. Defaults to the user config dir.
	CredsDir string `env:"CREDS_DIR"`

	// PageLimit is the default page size for list commands.
	PageLimit int `env:"PAGE_LIMIT"`

	Version bool `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags act as overrides when the env variables are not set
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the restaurant API")
	flag.StringVar(&cfg.CredsDir, "creds-dir", cfg.CredsDir, "directory for stored credentials")
	flag.IntVar(&cfg.PageLimit, "limit", cfg.PageLimit, "default page size for list commands")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show client version and exit")

	flag.Parse()

	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:3000/api/"
	}
	// the adapter joins relative paths, so the root must end with a slash
	if !strings.HasSuffix(cfg.APIURL, "/") {
		cfg.APIURL += "/"
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 10
	}
	// empty CredsDir is fine: the fs store falls back to os.UserConfigDir
	return cfg
}
