package worldgen

import (
	"math"
	"testing"
)

func TestHash4Deterministic(t *testing.T) {
	a := hash4(42, 3, 0xFFFFFFFE, 7)
	b := hash4(42, 3, 0xFFFFFFFE, 7)
	if a != b {
		t.Errorf("hash4 not deterministic: %d vs %d", a, b)
	}
}

func TestHash4InputSensitivity(t *testing.T) {
	base := hash4(1, 2, 3, 4)
	variants := [][4]uint32{
		{2, 2, 3, 4},
		{1, 3, 3, 4},
		{1, 2, 4, 4},
		{1, 2, 3, 5},
	}
	for _, v := range variants {
		if hash4(v[0], v[1], v[2], v[3]) == base {
			t.Errorf("hash4%v collides with hash4(1,2,3,4)", v)
		}
	}
}

func TestHashToUnitFloatRange(t *testing.T) {
	for _, v := range []uint32{0, 1, 12345, math.MaxUint32 / 2, math.MaxUint32} {
		f := hashToUnitFloat(v)
		if f < 0 || f > 1 {
			t.Errorf("hashToUnitFloat(%d) = %f, outside [0, 1]", v, f)
		}
	}
	if hashToUnitFloat(0) != 0 {
		t.Errorf("hashToUnitFloat(0) = %f, want 0", hashToUnitFloat(0))
	}
	if hashToUnitFloat(math.MaxUint32) != 1 {
		t.Errorf("hashToUnitFloat(max) = %f, want 1", hashToUnitFloat(math.MaxUint32))
	}
}

// flatField builds a grid where every vertex holds the same value.
func flatField(v float32) []float32 {
	field := make([]float32, ChunkGridResolution*ChunkGridResolution)
	for i := range field {
		field[i] = v
	}
	return field
}

// rampField builds a grid rising linearly along X from 0 to max.
func rampField(max float32) []float32 {
	const side = ChunkGridResolution
	field := make([]float32, side*side)
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			field[z*side+x] = max * float32(x) / float32(side-1)
		}
	}
	return field
}

func TestSampleFieldBilinearFlat(t *testing.T) {
	field := flatField(7.5)
	for _, pos := range [][2]float32{{0, 0}, {128, 128}, {3.1, 250.7}, {256, 256}} {
		if got := sampleFieldBilinear(field, pos[0], pos[1]); got != 7.5 {
			t.Errorf("flat field at (%f, %f) = %f, want 7.5", pos[0], pos[1], got)
		}
	}
}

func TestSampleFieldBilinearRamp(t *testing.T) {
	field := rampField(256)
	// On a linear ramp the interpolated value equals the X position.
	for _, x := range []float32{0, 64, 100.5, 255, 256} {
		got := sampleFieldBilinear(field, x, 77)
		if diff := float64(got - x); math.Abs(diff) > 0.01 {
			t.Errorf("ramp at x=%f: got %f, want %f", x, got, x)
		}
	}
}

func TestSampleFieldBilinearClampsOutside(t *testing.T) {
	field := rampField(256)
	inside := sampleFieldBilinear(field, 256, 128)
	outside := sampleFieldBilinear(field, 400, 128)
	if inside != outside {
		t.Errorf("out-of-chunk sample %f differs from edge sample %f", outside, inside)
	}
}

func TestEstimateSlope(t *testing.T) {
	if got := estimateSlope(flatField(10), 128, 128); got != 0 {
		t.Errorf("flat field slope = %f, want 0", got)
	}

	// Ramp rising 256 over 256 meters has gradient 1 along X.
	got := estimateSlope(rampField(256), 128, 128)
	if math.Abs(float64(got-1)) > 0.01 {
		t.Errorf("ramp slope = %f, want 1", got)
	}
}

func TestSampleBiomeNearest(t *testing.T) {
	const side = ChunkGridResolution
	values := make([]Biome, side*side)
	for i := range values {
		values[i] = BiomeGrassland
	}
	// Mark the corner vertex and the exact center vertex.
	values[0] = BiomeSnow
	center := side / 2
	values[center*side+center] = BiomeDesert

	if got := sampleBiomeNearest(values, 0, 0); got != BiomeSnow {
		t.Errorf("corner sample = %s, want snow", got)
	}
	if got := sampleBiomeNearest(values, 128, 128); got != BiomeDesert {
		t.Errorf("center sample = %s, want desert", got)
	}
	if got := sampleBiomeNearest(values, 200, 50); got != BiomeGrassland {
		t.Errorf("field sample = %s, want grassland", got)
	}
}
