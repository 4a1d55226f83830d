package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Set(t *testing.T) {
	for _, expected := range AllCommands {
		var actual Command
		require.NoError(t, actual.Set(expected.String()))
		assert.Equal(t, expected, actual)

		require.NoError(t, actual.Set("  "+expected.String()+"\n"))
		assert.Equal(t, expected, actual)
	}

	var buf Command
	assert.Error(t, buf.Set("restart"))
	assert.Error(t, buf.Set(""))
}

func TestCommands_String(t *testing.T) {
	assert.Equal(t, "toggle,cancel,status", AllCommands.String())
}
