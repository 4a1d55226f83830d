package transcribe

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Provider uint8

const (
	ProviderGroq   = Provider(0)
	ProviderOpenai = Provider(1)

	ProviderDefault = ProviderGroq
)

var (
	AllProviders = Providers{
		ProviderGroq,
		ProviderOpenai,
	}
)

func (this *Provider) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "groq":
		*this = ProviderGroq
		return nil
	case "openai":
		*this = ProviderOpenai
		return nil
	default:
		return fmt.Errorf("illegal-transcription-provider: %s", plain)
	}
}

func (this Provider) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-transcription-provider-%d", this)
	}
	return string(v)
}

func (this Provider) MarshalText() (text []byte, err error) {
	switch this {
	case ProviderGroq:
		return []byte("groq"), nil
	case ProviderOpenai:
		return []byte("openai"), nil
	default:
		return nil, fmt.Errorf("illegal transcription provider: %d", this)
	}
}

func (this *Provider) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

func (this *Provider) UnmarshalYAML(node *yaml.Node) error {
	var plain string
	if err := node.Decode(&plain); err != nil {
		return err
	}
	return this.Set(plain)
}

// Endpoint is the provider's OpenAI compatible transcription endpoint.
func (this Provider) Endpoint() string {
	switch this {
	case ProviderOpenai:
		return "https://api.openai.com/v1/audio/transcriptions"
	default:
		return "https://api.groq.com/openai/v1/audio/transcriptions"
	}
}

// DefaultModel is used whenever no model was configured explicitly.
func (this Provider) DefaultModel() string {
	switch this {
	case ProviderOpenai:
		return "whisper-1"
	default:
		return "whisper-large-v3-turbo"
	}
}

type Providers []Provider

func (this Providers) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Providers) String() string {
	return strings.Join(this.Strings(), ",")
}
