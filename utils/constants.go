// File: utils/constants.go
package utils

// Redis key prefixes.
const (
	DraftKeyPrefix    = "draft:"
	InFlightKeyPrefix = "draft-submit:"
	CatalogCacheKey   = "catalog:all"
)

// Gin context keys.
const (
	ContextLoggerKey = "logger"
	ContextTokenKey  = "accessToken"
	ContextEmailKey  = "email"
	ContextRoleKey   = "role"
)
