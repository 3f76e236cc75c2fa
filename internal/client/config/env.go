package config

import (
	"os"
	"strconv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL      = "IPMS_API_URL"
	EnvDatabase    = "IPMS_DB"
	EnvDownloadDir = "IPMS_DOWNLOAD_DIR"
	EnvLogLevel    = "IPMS_LOG_LEVEL"
	EnvMetricsAddr = "IPMS_METRICS_ADDR"
	EnvNoColor     = "NO_COLOR"
)

// lookupEnv is a test seam.
var lookupEnv = os.LookupEnv

func parseEnv(cfg *Config) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookupEnv(EnvDatabase); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookupEnv(EnvDownloadDir); ok && v != "" {
		cfg.DownloadDir = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv(EnvMetricsAddr); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := lookupEnv(EnvNoColor); ok && v != "" {
		if b, err := strconv.ParseBool(v); err != nil || b {
			cfg.Color = false
		}
	}
}
