// File: utils/constants.go
package utils

// SessionCachePrefix is the prefix used for Redis wizard session keys.
const SessionCachePrefix = "wizard:sess:"

// SessionIDHeader carries the wizard session ID on every request past
// session creation.
const SessionIDHeader = "X-Session-ID"
