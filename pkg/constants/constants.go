// Package constants defines shared enumerations and keys used across the
// FraudLens console service.
package constants

// ContextKey is the type for values stored in a context.Context.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID.
	ContextKeyRequestID ContextKey = "request_id"
	// ContextKeySession carries the authenticated session, when present.
	ContextKeySession ContextKey = "session"
	// ContextKeyLogger carries a request-scoped logger.
	ContextKeyLogger ContextKey = "logger"
)

// Role is a backend-assigned user role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// RiskLevel is the backend-assigned categorical risk label.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// KnownRiskLevels lists every risk level the backend emits. Anything outside
// this set renders with the default badge class.
var KnownRiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// AlertStatus values accepted by the alert resolution flow.
const (
	AlertStatusOpen   = "open"
	AlertStatusClosed = "closed"
)

// KnownStatuses lists every entity status with a dedicated badge class.
var KnownStatuses = []string{"open", "closed", "active", "inactive", "pending"}

// PageID identifies a console page. Exactly one page is active per session.
type PageID string

// Admin console pages.
const (
	PageOverview     PageID = "overview"
	PageUsers        PageID = "users"
	PageAnalytics    PageID = "analytics"
	PageAlerts       PageID = "alerts"
	PageIntelligence PageID = "intelligence"
)

// End-user console pages.
const (
	PageDashboard      PageID = "dashboard"
	PageNewTransaction PageID = "new-transaction"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session ID.
const SessionCookie = "fraudlens_session"

// HeaderFragment marks requests issued by the page script rather than a full
// browser navigation; guards answer these with 401 JSON instead of a redirect.
const HeaderFragment = "X-Fragment-Request"

// Default transaction field values applied during payload assembly.
const (
	DefaultCurrency = "INR"
	DefaultCountry  = "India"
	DefaultTxnType  = "WITHDRAW"
)
