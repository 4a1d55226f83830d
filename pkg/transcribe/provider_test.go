package transcribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Set(t *testing.T) {
	for _, expected := range AllProviders {
		var actual Provider
		require.NoError(t, actual.Set(expected.String()))
		assert.Equal(t, expected, actual)

		require.NoError(t, actual.Set(" "+expected.String()+" "))
		assert.Equal(t, expected, actual)
	}

	var buf Provider
	assert.Error(t, buf.Set("deepgram"))
	assert.Error(t, buf.Set(""))
}

func TestProvider_String(t *testing.T) {
	assert.Equal(t, "groq", ProviderGroq.String())
	assert.Equal(t, "openai", ProviderOpenai.String())
	assert.Equal(t, "illegal-transcription-provider-66", Provider(66).String())
}

func TestProvider_Endpoint(t *testing.T) {
	assert.Equal(t, "https://api.groq.com/openai/v1/audio/transcriptions", ProviderGroq.Endpoint())
	assert.Equal(t, "https://api.openai.com/v1/audio/transcriptions", ProviderOpenai.Endpoint())
}

func TestProvider_DefaultModel(t *testing.T) {
	assert.Equal(t, "whisper-large-v3-turbo", ProviderGroq.DefaultModel())
	assert.Equal(t, "whisper-1", ProviderOpenai.DefaultModel())
}

func TestConfiguration_ApiKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	instance := NewConfiguration()
	_, actualErr := instance.ApiKey()
	assert.Error(t, actualErr)

	instance.GroqApiKey = "configured"
	actual, actualErr := instance.ApiKey()
	require.NoError(t, actualErr)
	assert.Equal(t, "configured", actual)

	instance.GroqApiKey = ""
	t.Setenv("GROQ_API_KEY", "from-env")
	actual, actualErr = instance.ApiKey()
	require.NoError(t, actualErr)
	assert.Equal(t, "from-env", actual)

	instance.Provider = ProviderOpenai
	_, actualErr = instance.ApiKey()
	assert.Error(t, actualErr)

	instance.OpenaiApiKey = "other"
	actual, actualErr = instance.ApiKey()
	require.NoError(t, actualErr)
	assert.Equal(t, "other", actual)
}

func TestConfiguration_EffectiveEndpoint(t *testing.T) {
	instance := NewConfiguration()
	assert.Equal(t, ProviderGroq.Endpoint(), instance.EffectiveEndpoint())

	instance.Endpoint = "http://localhost:8080/v1/audio/transcriptions"
	assert.Equal(t, "http://localhost:8080/v1/audio/transcriptions", instance.EffectiveEndpoint())
}

func TestConfiguration_EffectiveModel(t *testing.T) {
	instance := NewConfiguration()
	assert.Equal(t, "whisper-large-v3-turbo", instance.EffectiveModel())

	instance.Provider = ProviderOpenai
	assert.Equal(t, "whisper-1", instance.EffectiveModel())

	instance.Model = "whisper-large-v3"
	assert.Equal(t, "whisper-large-v3", instance.EffectiveModel())
}
