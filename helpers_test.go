package shake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseSquare(t *testing.T) {
	origin := V3(8, 4, 2)

	// distances at or below 1 are clamped: origin unchanged
	assert.Equal(t, origin, InverseSquare(origin, 0))
	assert.Equal(t, origin, InverseSquare(origin, 0.5))
	assert.Equal(t, origin, InverseSquare(origin, 1))

	// inverse-square falloff beyond unit distance
	assert.Equal(t, V3(2, 1, 0.5), InverseSquare(origin, 2))
	assert.Equal(t, V3(0.5, 0.25, 0.125), InverseSquare(origin, 4))
}

func TestNextBindingNameUniqueFixedWidth(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := NextBindingName()
		require.Len(t, name, len("shake_")+8)
		require.True(t, !seen[name], "duplicate binding name %q", name)
		seen[name] = true
	}
}

func TestVec3Operations(t *testing.T) {
	assert.Equal(t, V3(5, 7, 9), V3(1, 2, 3).Add(V3(4, 5, 6)))
	assert.Equal(t, V3(2, 4, 6), V3(1, 2, 3).Scale(2))
	assert.Equal(t, V3(4, 10, 18), V3(1, 2, 3).Mul(V3(4, 5, 6)))
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 1}, Unit())

	xy := V3(3, 4, 5).XY()
	assert.Equal(t, 3.0, xy.X)
	assert.Equal(t, 4.0, xy.Y)
}
