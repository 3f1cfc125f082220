// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// WizardSessionPrefix is the prefix used for booking wizard session keys.
const WizardSessionPrefix = "wizard:"

// BookingBackupKey is the Redis list holding local-first copies of booking records.
const BookingBackupKey = "bookings:backup"
