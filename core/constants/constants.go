package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Token scopes
const (
	ScopeTokenAccess          = "access"
	ScopeTokenRefresh         = "refresh"
	ScopeTokenBookingApproval = "booking_approval"
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// Database settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeySlotCache      = "booking:slots:"
)

// Scheduling defaults
const (
	DefaultSlotDurationMinutes = 30
	SlotCacheTTL               = 60 * time.Second
)
