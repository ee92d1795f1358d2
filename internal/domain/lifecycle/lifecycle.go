// Package lifecycle holds shared constants for application start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
