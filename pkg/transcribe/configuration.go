package transcribe

import (
	"fmt"
	"os"

	"github.com/thrawny/wayvoice/pkg/common"
)

// DefaultPrompt biases the models towards the vocabulary this tool is
// typically dictated around.
const DefaultPrompt = "I'm working on the NixOS configuration with Home Manager. " +
	"Let me check the Neovim setup in LazyVim. " +
	"Claude Code suggested refactoring the TypeScript and Rust code. " +
	"The Hyprland keybindings need updating, same with the Niri config. " +
	"I'll use tmux and Ghostty for the terminal session. " +
	"The Kubernetes deployment needs the PostgreSQL migration to run first. " +
	"Let me check the GitHub pull request and run the CI workflow."

func NewConfiguration() Configuration {
	return Configuration{
		ProviderDefault,
		"",
		"",
		"",
		"",
		DefaultPrompt,
		"",
	}
}

type Configuration struct {
	Provider     Provider `yaml:"provider"`
	OpenaiApiKey string   `yaml:"openaiApiKey,omitempty"`
	GroqApiKey   string   `yaml:"groqApiKey,omitempty"`

	Model    string `yaml:"model,omitempty"`
	Language string `yaml:"language,omitempty"`
	Prompt   string `yaml:"prompt,omitempty"`

	Endpoint string `yaml:"endpoint,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("transcription.provider", "Transcription provider to be used. Possible values: "+AllProviders.String()).
		Envar("VOICE_PROVIDER").
		SetValue(&this.Provider)
	using.Flag("transcription.openai-api-key", "API key used when the openai provider is selected.").
		Envar("OPENAI_API_KEY").
		StringVar(&this.OpenaiApiKey)
	using.Flag("transcription.groq-api-key", "API key used when the groq provider is selected.").
		Envar("GROQ_API_KEY").
		StringVar(&this.GroqApiKey)
	using.Flag("transcription.model", "Model to transcribe with. If empty the provider's default model is used.").
		Envar("VOICE_MODEL").
		StringVar(&this.Model)
	using.Flag("transcription.language", "Language hint passed to the provider. If empty the provider detects it.").
		Envar("VOICE_LANGUAGE").
		StringVar(&this.Language)
	using.Flag("transcription.prompt", "Prompt passed to the provider to bias the vocabulary.").
		Envar("VOICE_PROMPT").
		StringVar(&this.Prompt)
	using.Flag("transcription.endpoint", "Overrides the provider's transcription endpoint. Mainly meant for self-hosted gateways.").
		Envar("VOICE_ENDPOINT").
		StringVar(&this.Endpoint)
}

// ApplyAsOverrides copies every field whose flag the user actually provided
// over the corresponding field of onto. Explicit zero values count as
// provided, so --transcription.provider=groq beats a file's openai.
func (this Configuration) ApplyAsOverrides(provided func(flag string) bool, onto *Configuration) {
	if provided("transcription.provider") {
		onto.Provider = this.Provider
	}
	if provided("transcription.openai-api-key") {
		onto.OpenaiApiKey = this.OpenaiApiKey
	}
	if provided("transcription.groq-api-key") {
		onto.GroqApiKey = this.GroqApiKey
	}
	if provided("transcription.model") {
		onto.Model = this.Model
	}
	if provided("transcription.language") {
		onto.Language = this.Language
	}
	if provided("transcription.prompt") {
		onto.Prompt = this.Prompt
	}
	if provided("transcription.endpoint") {
		onto.Endpoint = this.Endpoint
	}
}

// ApiKey resolves the key for the selected provider, falling back to the
// matching environment variable.
func (this Configuration) ApiKey() (string, error) {
	switch this.Provider {
	case ProviderOpenai:
		if v := this.OpenaiApiKey; v != "" {
			return v, nil
		}
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("neither openaiApiKey is configured nor OPENAI_API_KEY is set")
	default:
		if v := this.GroqApiKey; v != "" {
			return v, nil
		}
		if v := os.Getenv("GROQ_API_KEY"); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("neither groqApiKey is configured nor GROQ_API_KEY is set")
	}
}

func (this Configuration) EffectiveEndpoint() string {
	if v := this.Endpoint; v != "" {
		return v
	}
	return this.Provider.Endpoint()
}

func (this Configuration) EffectiveModel() string {
	if v := this.Model; v != "" {
		return v
	}
	return this.Provider.DefaultModel()
}
