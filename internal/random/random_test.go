package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(26), b.IntN(26))
	}
}

func TestIntN_InRange(t *testing.T) {
	r := New(nil)

	for i := 0; i < 1000; i++ {
		v := r.IntN(26)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 26)
	}
}
