// Package delivery defines the contract every transport (HTTP server,
// scheduler) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running serving component. Serve blocks until the
// delivery stops or fails; shutdown happens through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
