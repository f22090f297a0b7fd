package app

import (
	"fmt"

	goflags "github.com/jessevdk/go-flags"
)

// Config holds the application configuration. Every option can be set either
// as a command-line flag or through the corresponding POMO_* environment
// variable; flags win when both are present.
type Config struct {
	DBPath    string `long:"db-path" env:"POMO_DB_PATH" default:"./pomodoros.db" description:"Path to the SQLite database file"`
	Timezone  string `long:"timezone" env:"POMO_TZ" default:"UTC" description:"Timezone for displayed timestamps"`
	Port      string `long:"port" env:"POMO_PORT" default:"7070" description:"HTTP listen port"`
	PageSize  int    `long:"page-size" env:"POMO_PAGE_SIZE" default:"100" description:"Rows per dashboard page"`
	Goal      int    `long:"goal" env:"POMO_GOAL" default:"13000" description:"Total intended pomodoros"`
	RateLimit int    `long:"rate-limit" env:"POMO_RATE_LIMIT" default:"100" description:"Requests per minute per client"`
}

// LoadConfig parses configuration from args (os.Args when nil) and the
// environment. Returns an error if a numeric option is out of range.
func LoadConfig(args []string) (*Config, error) {
	var cfg Config
	parser := goflags.NewParser(&cfg, goflags.HelpFlag|goflags.PassDoubleDash)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}
	if err != nil {
		return nil, err
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be a positive integer")
	}
	if cfg.Goal <= 0 {
		return nil, fmt.Errorf("goal must be a positive integer")
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be a positive integer")
	}

	return &cfg, nil
}
