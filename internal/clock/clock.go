// Package clock provides the world's day/night timer and the lighting
// values derived from it.
package clock

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldClock tracks the time of day as a fractional hour in [0, 24).
type WorldClock struct {
	hour     float32
	daySpeed float32
}

// New creates a clock starting at startHour, advancing daySpeed hours per
// real second.
func New(startHour, daySpeed float32) *WorldClock {
	return &WorldClock{
		hour:     wrapHour(startHour),
		daySpeed: daySpeed,
	}
}

// Update advances the clock by dt seconds of real time.
func (c *WorldClock) Update(dtSeconds float32) {
	c.hour = wrapHour(c.hour + dtSeconds*c.daySpeed)
}

// Hour returns the current time of day in [0, 24).
func (c *WorldClock) Hour() float32 {
	return c.hour
}

// SetHour sets the time of day, wrapping into [0, 24).
func (c *WorldClock) SetHour(hour float32) {
	c.hour = wrapHour(hour)
}

// DaySpeed returns the clock rate in hours per second.
func (c *WorldClock) DaySpeed() float32 {
	return c.daySpeed
}

// SunDirection returns the normalized direction towards the sun for the
// current hour. The sun crosses the horizon at 06:00 and 18:00 and peaks
// at noon.
func (c *WorldClock) SunDirection() mgl32.Vec3 {
	angle := c.hour/24.0*(2*math.Pi) - math.Pi/2
	altitude := float32(math.Sin(float64(angle)))
	azimuth := float32(math.Cos(float64(angle)))
	return mgl32.Vec3{azimuth * 0.45, altitude, 0.75}.Normalize()
}

// AmbientStrength returns the ambient light level in [0.1, 0.45],
// following the sun's altitude.
func (c *WorldClock) AmbientStrength() float32 {
	day := c.SunDirection().Y()*0.5 + 0.5
	if day < 0 {
		day = 0
	}
	if day > 1 {
		day = 1
	}
	return 0.1 + day*0.35
}

// wrapHour wraps a fractional hour into [0, 24).
func wrapHour(h float32) float32 {
	wrapped := float32(math.Mod(float64(h), 24))
	if wrapped < 0 {
		wrapped += 24
	}
	return wrapped
}
