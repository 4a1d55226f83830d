package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	log "github.com/echocat/slf4g"
	"github.com/go-resty/resty/v2"
)

// Client uploads captured audio to the configured provider and returns the
// plain transcript. One request per call; no streaming, no retries.
type Client struct {
	Configuration Configuration

	client *resty.Client
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (this *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	apiKey, err := this.Configuration.ApiKey()
	if err != nil {
		return "", err
	}

	fields := map[string]string{
		"model": this.Configuration.EffectiveModel(),
	}
	if v := this.Configuration.Language; v != "" {
		fields["language"] = v
	}
	if v := this.Configuration.Prompt; v != "" {
		fields["prompt"] = v
	}

	endpoint := this.Configuration.EffectiveEndpoint()
	log.With("provider", this.Configuration.Provider).
		With("endpoint", endpoint).
		With("audioBytes", len(audio)).
		Debug("Uploading audio for transcription...")

	var result transcriptionResponse
	rsp, err := this.resolveClient().R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetMultipartField("file", "audio.wav", "audio/wav", bytes.NewReader(audio)).
		SetMultipartFormData(fields).
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("cannot call transcription endpoint %q: %w", endpoint, err)
	}
	if rsp.IsError() {
		return "", fmt.Errorf("transcription endpoint %q answered %s: %s", endpoint, rsp.Status(), strings.TrimSpace(string(rsp.Body())))
	}

	return strings.TrimSpace(result.Text), nil
}

func (this *Client) resolveClient() *resty.Client {
	if v := this.client; v != nil {
		return v
	}
	this.client = resty.New()
	return this.client
}
