package config

import "time"

// Sink names accepted by ExportSink.
const (
	SinkLocal = "local"
	SinkS3    = "s3"
)

// Config holds runtime settings for the IPMS CLI.
//
// Durations are time.Duration values; SearchDebounce is the quiet period a
// filter edit waits before a fetch is issued, RequestTimeout of zero means
// no client-side timeout.
type Config struct {
	APIBaseURL               string
	DatabasePath             string
	DownloadDir              string
	SearchDebounce           time.Duration
	NotificationPollInterval time.Duration
	RequestTimeout           time.Duration
	RateLimit                float64
	RateBurst                int
	MetricsAddr              string
	LogLevel                 string
	Color                    bool
	DiscardStaleResponses    bool
	ExportSink               string
	S3Bucket                 string
	S3Prefix                 string
	S3Region                 string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "ipms.db"
	c.DownloadDir = "downloads"
	c.SearchDebounce = 400 * time.Millisecond
	c.NotificationPollInterval = 30 * time.Second
	c.RequestTimeout = 0
	c.RateLimit = 10
	c.RateBurst = 5
	c.MetricsAddr = ""
	c.LogLevel = "info"
	c.Color = true
	c.DiscardStaleResponses = true
	c.ExportSink = SinkLocal
}

// LoadConfig builds a Config from defaults, then the config file, then the
// environment, then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
