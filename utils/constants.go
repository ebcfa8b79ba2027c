package utils

import (
	"time"
)

// ContextKey namespaces values stored on request contexts
type ContextKey string

// Request context keys
const (
	RequestIDKey ContextKey = "request_id"
	EndpointKey  ContextKey = "endpoint"
)

// HTTP constants
const (
	// RequestIDHeader carries the request correlation id
	RequestIDHeader = "X-Request-ID"

	// DefaultRequestTimeout bounds the work of a single handler
	DefaultRequestTimeout = 30 * time.Second

	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Directory cache keys, prefixed with CACHE_KEY_PREFIX at runtime
const (
	DirectoryCountriesCacheKey = "directory:countries"
	DirectoryLanguagesCacheKey = "directory:languages"
)

// AppVersion is reported by the health endpoint
const AppVersion = "1.0.0"
