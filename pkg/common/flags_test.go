package common

import (
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingFlagHolder_WasProvided(t *testing.T) {
	t.Setenv("TEST_TRACKING_NAME", "")
	t.Setenv("TEST_TRACKING_ENABLED", "")

	cmd := kingpin.New("test", "")
	instance := &TrackingFlagHolder{Delegate: cmd}

	var name string
	var enabled bool
	instance.Flag("name", "").Envar("TEST_TRACKING_NAME").StringVar(&name)
	instance.Flag("enabled", "").Envar("TEST_TRACKING_ENABLED").BoolVar(&enabled)

	_, err := cmd.Parse([]string{"--name", "someone"})
	require.NoError(t, err)

	assert.True(t, instance.WasProvided("name"))
	assert.False(t, instance.WasProvided("enabled"))
	assert.False(t, instance.WasProvided("unregistered"))
}

func TestTrackingFlagHolder_WasProvided_explicitZeroValue(t *testing.T) {
	cmd := kingpin.New("test", "")
	instance := &TrackingFlagHolder{Delegate: cmd}

	enabled := true
	instance.Flag("enabled", "").BoolVar(&enabled)

	_, err := cmd.Parse([]string{"--no-enabled"})
	require.NoError(t, err)

	assert.True(t, instance.WasProvided("enabled"))
	assert.False(t, enabled)
}

func TestTrackingFlagHolder_WasProvided_byEnvironment(t *testing.T) {
	t.Setenv("TEST_TRACKING_NAME", "")
	t.Setenv("TEST_TRACKING_ENABLED", "false")

	cmd := kingpin.New("test", "")
	instance := &TrackingFlagHolder{Delegate: cmd}

	var name string
	enabled := true
	instance.Flag("name", "").Envar("TEST_TRACKING_NAME").StringVar(&name)
	instance.Flag("enabled", "").Envar("TEST_TRACKING_ENABLED").BoolVar(&enabled)

	_, err := cmd.Parse(nil)
	require.NoError(t, err)

	assert.False(t, instance.WasProvided("name"))
	assert.True(t, instance.WasProvided("enabled"))
	assert.False(t, enabled)
}
