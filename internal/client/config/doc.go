// Package config loads runtime configuration for the IPMS CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. A JSON or YAML file chosen with -c or -config.
//  3. Environment: IPMS_API_URL, IPMS_DB, IPMS_DOWNLOAD_DIR, IPMS_LOG_LEVEL,
//     IPMS_METRICS_ADDR, NO_COLOR.
//  4. Flags: -a, -d, -p, -db, -o, -m, -l.
//
// Durations in the file use timex.Duration, so "400ms" and 400000000 are
// equivalent:
//
//	api_url: http://127.0.0.1:8000
//	search_debounce: 400ms
//	notification_poll_interval: 30s
//	discard_stale_responses: true
//	export_sink: s3
//	s3_bucket: ipms-exports
package config
