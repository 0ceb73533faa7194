// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of every delivery.
const DefaultTimeout = 30 * time.Second
