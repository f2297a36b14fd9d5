package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config values from environment variables:
//
//	ADDRESS       HTTP bind address
//	DATABASE_DSN  PostgreSQL DSN
//	BCRYPT_COST   bcrypt work factor
//
// Unset or empty variables leave the current value unchanged. A non-numeric
// BCRYPT_COST is ignored.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BCryptCost = cost
		}
	}
}
