package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/flagx"
	"github.com/dmitrijs2005/ipms/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk DTO. Pointer fields distinguish "absent" from
// "zero" so a file can switch booleans off without clobbering other values.
type FileConfig struct {
	APIBaseURL               string          `json:"api_url" yaml:"api_url"`
	DatabasePath             string          `json:"db_path" yaml:"db_path"`
	DownloadDir              string          `json:"download_dir" yaml:"download_dir"`
	SearchDebounce           *timex.Duration `json:"search_debounce" yaml:"search_debounce"`
	NotificationPollInterval *timex.Duration `json:"notification_poll_interval" yaml:"notification_poll_interval"`
	RequestTimeout           *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RateLimit                *float64        `json:"rate_limit" yaml:"rate_limit"`
	RateBurst                *int            `json:"rate_burst" yaml:"rate_burst"`
	MetricsAddr              string          `json:"metrics_addr" yaml:"metrics_addr"`
	LogLevel                 string          `json:"log_level" yaml:"log_level"`
	Color                    *bool           `json:"color" yaml:"color"`
	DiscardStaleResponses    *bool           `json:"discard_stale_responses" yaml:"discard_stale_responses"`
	ExportSink               string          `json:"export_sink" yaml:"export_sink"`
	S3Bucket                 string          `json:"s3_bucket" yaml:"s3_bucket"`
	S3Prefix                 string          `json:"s3_prefix" yaml:"s3_prefix"`
	S3Region                 string          `json:"s3_region" yaml:"s3_region"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// The format follows the extension: .yaml/.yml is YAML, anything else JSON.
// Read and decode errors panic, like flag errors do.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	fc, err := readFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.DownloadDir, fc.DownloadDir)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.ExportSink, fc.ExportSink)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Prefix, fc.S3Prefix)
	setString(&cfg.S3Region, fc.S3Region)

	if fc.SearchDebounce != nil {
		cfg.SearchDebounce = fc.SearchDebounce.Duration
	}
	if fc.NotificationPollInterval != nil {
		cfg.NotificationPollInterval = fc.NotificationPollInterval.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.RateBurst != nil {
		cfg.RateBurst = *fc.RateBurst
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	if fc.DiscardStaleResponses != nil {
		cfg.DiscardStaleResponses = *fc.DiscardStaleResponses
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
