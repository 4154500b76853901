package config

import "time"

// Defaults applied when a section or field is left empty.
const (
	DefaultBcryptCost        = 10
	DefaultAccessTokenTTL    = 15 * time.Minute
	DefaultRefreshTokenTTL   = 30 * 24 * time.Hour
	DefaultOTPTTL            = 5 * time.Minute
	DefaultOTPResendCooldown = 60 * time.Second
	DefaultExportMaxRows     = 10000
	DefaultRedisLockTTL      = 5 * time.Second
	DefaultWorkerPort        = 8081
)
