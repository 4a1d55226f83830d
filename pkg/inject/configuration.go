package inject

import (
	"time"

	"github.com/thrawny/wayvoice/pkg/common"
)

func NewConfiguration() Configuration {
	return Configuration{
		ModeDefault,
		0,
		0,
	}
}

type Configuration struct {
	Mode Mode `yaml:"mode"`

	// Delay before typing respectively between copy and paste. Zero selects
	// the mode's default (100ms for wtype, 50ms for clipboard).
	Delay common.Duration `yaml:"delay,omitempty"`
	// KeyDelay between the single synthesized key presses of wtype. Zero
	// selects the default of 5ms.
	KeyDelay common.Duration `yaml:"keyDelay,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("injection.mode", "How the transcribed text is brought into the focused window. Possible values: "+AllModes.String()).
		Envar("VOICE_INJECT_MODE").
		SetValue(&this.Mode)
	using.Flag("injection.delay", "Delay before typing respectively between copy and paste.").
		Envar("VOICE_INJECT_DELAY").
		SetValue(&this.Delay)
	using.Flag("injection.key-delay", "Delay between the single synthesized key presses.").
		Envar("VOICE_INJECT_KEY_DELAY").
		SetValue(&this.KeyDelay)
}

// ApplyAsOverrides copies every field whose flag the user actually provided
// over the corresponding field of onto. Explicit zero values count as
// provided, so --injection.mode=clipboard beats a file's wtype.
func (this Configuration) ApplyAsOverrides(provided func(flag string) bool, onto *Configuration) {
	if provided("injection.mode") {
		onto.Mode = this.Mode
	}
	if provided("injection.delay") {
		onto.Delay = this.Delay
	}
	if provided("injection.key-delay") {
		onto.KeyDelay = this.KeyDelay
	}
}

func (this Configuration) resolveDelay() time.Duration {
	if v := this.Delay; !v.IsZero() {
		return v.AsDuration()
	}
	if this.Mode == ModeClipboard {
		return 50 * time.Millisecond
	}
	return 100 * time.Millisecond
}

func (this Configuration) resolveKeyDelay() time.Duration {
	if v := this.KeyDelay; !v.IsZero() {
		return v.AsDuration()
	}
	return 5 * time.Millisecond
}
