// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis scheduling-session keys.
const SessionCachePrefix = "sched:session:"

// SessionCacheTTL is the time-to-live for a scheduling session between
// candidate search and booking confirmation.
const SessionCacheTTL = 10 * time.Minute
