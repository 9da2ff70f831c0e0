//go:build !js

package stream

import "github.com/Faultbox/wanderlands/internal/config"

// newDefaultLoader selects the worker-pool loader on native targets.
func newDefaultLoader(seed uint32, cfg *config.Config) Loader {
	return NewPoolLoader(seed, cfg, cfg.World.Threads)
}
