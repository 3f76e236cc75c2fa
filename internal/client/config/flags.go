package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ipms/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-a  string  backend base URL
//	-d  int     search debounce (milliseconds)
//	-p  int     notification poll interval (seconds)
//	-db string  local database path
//	-o  string  download directory
//	-m  string  metrics listen address
//	-l  string  log level
//
// os.Args is filtered first so foreign flags (e.g. -c) do not break parsing.
// Malformed values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-db", "-o", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "IPMS backend base URL")
	debounce := fs.Int("d", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")
	poll := fs.Int("p", int(cfg.NotificationPollInterval.Seconds()), "notification poll interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for exported files")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address to serve client metrics on (empty disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
	cfg.NotificationPollInterval = time.Duration(*poll) * time.Second
}
