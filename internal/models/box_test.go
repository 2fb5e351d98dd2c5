package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox(t *testing.T) {
	box, err := NewBox(750)
	require.NoError(t, err)

	assert.Equal(t, 750.0, box.Value())
	assert.False(t, box.IsOpen())
}

func TestNewBox_InvalidValues(t *testing.T) {
	for _, value := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		_, err := NewBox(value)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}
}

func TestBox_OpenIsIdempotent(t *testing.T) {
	box, err := NewBox(0)
	require.NoError(t, err)

	box.Open()
	box.Open()

	assert.True(t, box.IsOpen())
	assert.Equal(t, 0.0, box.Value())
}

func TestBox_String(t *testing.T) {
	box, err := NewBox(1000000)
	require.NoError(t, err)
	assert.Equal(t, "Open: false Value: 1e+06", box.String())

	box.Open()
	assert.Equal(t, "Open: true Value: 1e+06", box.String())
}

func TestBox_MarshalJSON(t *testing.T) {
	box, err := NewBox(0.01)
	require.NoError(t, err)
	box.Open()

	data, err := json.Marshal(box)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":0.01,"open":true}`, string(data))
}
