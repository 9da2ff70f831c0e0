//go:build js

package stream

import "github.com/Faultbox/wanderlands/internal/config"

// newDefaultLoader selects the throttled synchronous loader on browser
// targets, where spawning generation workers is not available.
func newDefaultLoader(seed uint32, cfg *config.Config) Loader {
	return NewSyncLoader(seed, cfg, defaultChunksPerPoll)
}
