package record

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Start_failsForMissingBinary(t *testing.T) {
	instance := Recorder{Configuration: Configuration{
		Binary: "definitely-not-an-existing-recorder",
	}}

	_, actualErr := instance.Start(filepath.Join(t.TempDir(), "out.wav"))

	require.Error(t, actualErr)
	assert.Contains(t, actualErr.Error(), "cannot start recorder")
}

func TestProcess_Stop_toleratesExitedProcess(t *testing.T) {
	// "true" ignores the pw-record style arguments and exits right away;
	// stopping afterwards has to swallow the kill/wait errors.
	instance := Recorder{Configuration: Configuration{
		Binary: "true",
	}}

	process, err := instance.Start(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)

	process.Stop()
	process.Stop()
}

func TestDefaultArtifactFile(t *testing.T) {
	assert.Equal(t, "voice-recording.wav", filepath.Base(DefaultArtifactFile()))
}
