package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transcribe(t *testing.T) {
	var received struct {
		auth     string
		model    string
		language string
		prompt   string
		fileName string
		file     []byte
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		received.auth = r.Header.Get("Authorization")
		received.model = r.FormValue("model")
		received.language = r.FormValue("language")
		received.prompt = r.FormValue("prompt")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		received.fileName = header.Filename
		received.file, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  hello world \n"}`))
	}))
	defer server.Close()

	instance := Client{Configuration: Configuration{
		Provider:   ProviderGroq,
		GroqApiKey: "test-key",
		Language:   "en",
		Prompt:     "some prompt",
		Endpoint:   server.URL,
	}}

	actual, actualErr := instance.Transcribe(context.Background(), []byte("RIFFaudio"))

	require.NoError(t, actualErr)
	assert.Equal(t, "hello world", actual)
	assert.Equal(t, "Bearer test-key", received.auth)
	assert.Equal(t, "whisper-large-v3-turbo", received.model)
	assert.Equal(t, "en", received.language)
	assert.Equal(t, "some prompt", received.prompt)
	assert.Equal(t, "audio.wav", received.fileName)
	assert.Equal(t, []byte("RIFFaudio"), received.file)
}

func TestClient_Transcribe_omitsEmptyHints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.NotContains(t, r.MultipartForm.Value, "language")
		assert.NotContains(t, r.MultipartForm.Value, "prompt")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	instance := Client{Configuration: Configuration{
		GroqApiKey: "test-key",
		Endpoint:   server.URL,
	}}

	actual, actualErr := instance.Transcribe(context.Background(), []byte("x"))

	require.NoError(t, actualErr)
	assert.Equal(t, "ok", actual)
}

func TestClient_Transcribe_failsOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("over capacity"))
	}))
	defer server.Close()

	instance := Client{Configuration: Configuration{
		GroqApiKey: "test-key",
		Endpoint:   server.URL,
	}}

	_, actualErr := instance.Transcribe(context.Background(), []byte("x"))

	require.Error(t, actualErr)
	assert.Contains(t, actualErr.Error(), "503")
	assert.Contains(t, actualErr.Error(), "over capacity")
}

func TestClient_Transcribe_failsOnUnreachableEndpoint(t *testing.T) {
	instance := Client{Configuration: Configuration{
		GroqApiKey: "test-key",
		Endpoint:   "http://127.0.0.1:1/v1/audio/transcriptions",
	}}

	_, actualErr := instance.Transcribe(context.Background(), []byte("x"))

	require.Error(t, actualErr)
	assert.Contains(t, actualErr.Error(), "cannot call transcription endpoint")
}

func TestClient_Transcribe_failsWithoutApiKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	instance := Client{Configuration: Configuration{}}

	_, actualErr := instance.Transcribe(context.Background(), []byte("x"))

	require.Error(t, actualErr)
	assert.Contains(t, actualErr.Error(), "GROQ_API_KEY")
}
