package record

import (
	"github.com/thrawny/wayvoice/pkg/common"
)

func NewConfiguration() Configuration {
	return Configuration{
		"pw-record",
	}
}

type Configuration struct {
	Binary string `yaml:"binary,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("recording.binary", "Command used to capture microphone audio. It has to accept pw-record style --format/--rate/--channels arguments followed by the target file.").
		Envar("VOICE_RECORD_BINARY").
		StringVar(&this.Binary)
}

// ApplyAsOverrides copies every field whose flag the user actually provided
// over the corresponding field of onto.
func (this Configuration) ApplyAsOverrides(provided func(flag string) bool, onto *Configuration) {
	if provided("recording.binary") {
		onto.Binary = this.Binary
	}
}
