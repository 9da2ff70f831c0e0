// Package runtime combines chunk streaming and the world clock into the
// single facade the renderer drives each frame.
package runtime

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wanderlands/internal/clock"
	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/stream"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

// LightingState is the sun/ambient snapshot for one frame.
type LightingState struct {
	SunDirection mgl32.Vec3
	Ambient      float32
}

// Stats merges streaming telemetry with the clock.
type Stats struct {
	LoadedChunks  int
	PendingChunks int
	CenterChunk   worldgen.ChunkCoord
	Hour          float32
}

// WorldRuntime owns the streaming world and the clock.
type WorldRuntime struct {
	streaming *stream.World
	clock     *clock.WorldClock
}

// New constructs the runtime from a validated config.
func New(cfg *config.Config) (*WorldRuntime, error) {
	streaming, err := stream.New(cfg)
	if err != nil {
		return nil, err
	}
	return &WorldRuntime{
		streaming: streaming,
		clock:     clock.New(cfg.World.StartHour, cfg.World.DaySpeed),
	}, nil
}

// Update advances the clock by dt seconds and the streaming state for the
// observer position. Call once per frame.
func (r *WorldRuntime) Update(dtSeconds float32, observerPos mgl32.Vec3) {
	r.clock.Update(dtSeconds)
	r.streaming.Update(observerPos)
}

// Chunks exposes the loaded chunk map by reference; valid until the next
// Update.
func (r *WorldRuntime) Chunks() map[worldgen.ChunkCoord]*worldgen.ChunkData {
	return r.streaming.Chunks()
}

// Lighting returns the current sun and ambient light state.
func (r *WorldRuntime) Lighting() LightingState {
	return LightingState{
		SunDirection: r.clock.SunDirection(),
		Ambient:      r.clock.AmbientStrength(),
	}
}

// Stats returns combined telemetry.
func (r *WorldRuntime) Stats() Stats {
	s := r.streaming.Stats()
	return Stats{
		LoadedChunks:  s.LoadedChunks,
		PendingChunks: s.PendingChunks,
		CenterChunk:   s.CenterChunk,
		Hour:          r.clock.Hour(),
	}
}

// Seed returns the world seed for save-state round-tripping.
func (r *WorldRuntime) Seed() uint32 {
	return r.streaming.Seed()
}

// Clock exposes the world clock, e.g. for restoring a saved hour.
func (r *WorldRuntime) Clock() *clock.WorldClock {
	return r.clock
}

// ReloadConfig swaps generation parameters wholesale; all loaded chunks
// are discarded and regenerated.
func (r *WorldRuntime) ReloadConfig(cfg *config.Config) error {
	return r.streaming.ReloadConfig(cfg)
}

// Close stops the streaming world.
func (r *WorldRuntime) Close() {
	r.streaming.Close()
}
