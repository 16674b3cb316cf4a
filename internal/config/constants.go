package config

import "time"

// Defaults applied when the matching variable is unset or invalid
const (
	DefaultServiceName = "craft-value"

	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute

	DefaultRateLimit  = 1000
	DefaultRateWindow = 5 * time.Minute

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultReportPath = "reports/efficiency.xlsx"
)
