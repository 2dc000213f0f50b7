package synco

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	HP int
}

type Frozen struct{}

// requirePanicsWith runs fn and fails unless it panics with an error matching
// target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, eris.Is(err, target), "expected %v, got %v", target, err)
	}()
	fn()
}

// newTestWorld returns a World with Position, Velocity, Health and Frozen
// registered in that order.
func newTestWorld(t testing.TB) *World {
	t.Helper()
	w := NewWorld()
	RegisterComponent[Position](w)
	RegisterComponent[Velocity](w)
	RegisterComponent[Health](w)
	RegisterComponent[Frozen](w)
	return w
}
