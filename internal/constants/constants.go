package constants

import "time"

// Gin context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyPrincipal = "principal"
	SessionKeyToken     = "token"
)

const SessionCookieName = "trackhire_session"

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Credentials
const (
	MinPasswordLength = 6
	MinNameLength     = 2
)

const RecentApplicationsLimit = 3

const DefaultTokenTTL = 24 * time.Hour
