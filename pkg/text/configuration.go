package text

import (
	"github.com/thrawny/wayvoice/pkg/common"
)

func NewConfiguration() Configuration {
	return Configuration{
		true,
		Replacements{},
	}
}

type Configuration struct {
	UseDefaults bool         `yaml:"useDefaults"`
	Entries     Replacements `yaml:"entries,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("replacements.use-defaults", "If true the built-in replacement dictionary is used as base for the configured entries.").
		Envar("VOICE_USE_DEFAULT_REPLACEMENTS").
		BoolVar(&this.UseDefaults)
}

// ApplyAsOverrides copies every field whose flag the user actually provided
// over the corresponding field of onto; an explicit
// --no-replacements.use-defaults wins over a file's true. Entries have no
// flag and stay untouched.
func (this Configuration) ApplyAsOverrides(provided func(flag string) bool, onto *Configuration) {
	if provided("replacements.use-defaults") {
		onto.UseDefaults = this.UseDefaults
	}
}

// Effective resolves the dictionary the replacement pass should run with:
// configured entries laid over the built-in defaults, unless defaults are
// disabled.
func (this Configuration) Effective() Replacements {
	if !this.UseDefaults {
		return this.Entries
	}
	return this.Entries.MergedOver(DefaultReplacements())
}
