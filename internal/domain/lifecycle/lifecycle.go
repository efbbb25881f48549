// Package lifecycle holds process-wide start/stop settings shared by the infrastructure hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, graceful shutdowns, disconnects).
const DefaultTimeout = 10 * time.Second
