package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// AccessTokenTTLSeconds is the time-to-live for access tokens in seconds (86400 seconds = 24 hours)
	AccessTokenTTLSeconds = 86400
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests in seconds (24 hours)
	CORSMaxAge = 86400
)

// Audience preview pagination bounds
const (
	// PreviewDefaultPageSize is the page size used when the client omits one
	PreviewDefaultPageSize = 20

	// PreviewMinPageSize is the smallest accepted preview page size
	PreviewMinPageSize = 10

	// PreviewMaxPageSize is the largest accepted preview page size
	PreviewMaxPageSize = 200
)

// Cache keys
const (
	// MasterDataCacheKey stores the bundled dropdown payload
	MasterDataCacheKey = "master_data:v1"

	// ContactSummaryCacheKey stores the dashboard contact aggregates
	ContactSummaryCacheKey = "contact_summary:v1"
)

// Bulk upload reporting
const (
	// BulkUploadMaxReportedErrors caps how many row errors are returned to the client
	BulkUploadMaxReportedErrors = 5
)
