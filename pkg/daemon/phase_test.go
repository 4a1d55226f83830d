package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_Set(t *testing.T) {
	for _, expected := range AllPhases {
		var actual Phase
		require.NoError(t, actual.Set(expected.String()))
		assert.Equal(t, expected, actual)

		require.NoError(t, actual.Set(" "+expected.String()+" "))
		assert.Equal(t, expected, actual)
	}

	var buf Phase
	assert.Error(t, buf.Set("busy"))
	assert.Error(t, buf.Set(""))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "recording", PhaseRecording.String())
	assert.Equal(t, "transcribing", PhaseTranscribing.String())
	assert.Equal(t, "illegal-session-phase-66", Phase(66).String())
}

func TestPhases_String(t *testing.T) {
	assert.Equal(t, "idle,recording,transcribing", AllPhases.String())
}
