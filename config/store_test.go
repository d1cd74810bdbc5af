package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwarp/liquify/config"
)

func TestNewStoreDefaults(t *testing.T) {
	s := config.NewStore()
	assert.Equal(t, config.DefaultRadius, s.LastRadius())
	assert.Equal(t, config.DefaultStrength, s.LastStrength())
}

func TestWithDefaultOptions(t *testing.T) {
	s := config.NewStore(config.WithDefaultRadius(30), config.WithDefaultStrength(10))
	assert.Equal(t, 30.0, s.LastRadius())
	assert.Equal(t, 10.0, s.LastStrength())
}

func TestSetLastValuesPersist(t *testing.T) {
	s := config.NewStore()
	s.SetLastRadius(77)
	s.SetLastStrength(15)
	assert.Equal(t, 77.0, s.LastRadius())
	assert.Equal(t, 15.0, s.LastStrength())
}

func TestSessionRoundTrip(t *testing.T) {
	s := config.NewStore()
	s.SetLastRadius(42)
	s.SetLastStrength(9)

	blob, err := s.MarshalSession()
	require.NoError(t, err)

	restored := config.NewStore()
	require.NoError(t, restored.UnmarshalSession(blob))
	assert.Equal(t, 42.0, restored.LastRadius())
	assert.Equal(t, 9.0, restored.LastStrength())
}
