// Package lifecycle holds process lifecycle constants shared by deliveries and infra.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of deliveries.
const DefaultTimeout = 10 * time.Second
