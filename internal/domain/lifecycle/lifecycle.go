// Package lifecycle holds shared timing constants for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, e.g. a database ping or an HTTP shutdown.
const DefaultTimeout = 10 * time.Second
