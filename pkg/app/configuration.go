package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thrawny/wayvoice/pkg/common"
	"github.com/thrawny/wayvoice/pkg/inject"
	"github.com/thrawny/wayvoice/pkg/record"
	"github.com/thrawny/wayvoice/pkg/text"
	"github.com/thrawny/wayvoice/pkg/transcribe"
)

func NewConfiguration() Configuration {
	return Configuration{
		transcribe.NewConfiguration(),
		text.NewConfiguration(),
		inject.NewConfiguration(),
		record.NewConfiguration(),
	}
}

type Configuration struct {
	Transcription transcribe.Configuration `yaml:"transcription"`
	Replacements  text.Configuration       `yaml:"replacements,omitempty"`
	Injection     inject.Configuration     `yaml:"injection,omitempty"`
	Recording     record.Configuration     `yaml:"recording,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	this.Transcription.SetupConfiguration(using)
	this.Replacements.SetupConfiguration(using)
	this.Injection.SetupConfiguration(using)
	this.Recording.SetupConfiguration(using)
}

// ApplyAsOverrides copies every field whose flag the user actually provided
// over the corresponding field of onto, including explicitly provided zero
// values a plain struct merge would miss.
func (this Configuration) ApplyAsOverrides(provided func(flag string) bool, onto *Configuration) {
	this.Transcription.ApplyAsOverrides(provided, &onto.Transcription)
	this.Replacements.ApplyAsOverrides(provided, &onto.Replacements)
	this.Injection.ApplyAsOverrides(provided, &onto.Injection)
	this.Recording.ApplyAsOverrides(provided, &onto.Recording)
}

func (this *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(this)
}

func (this *Configuration) loadFromFile(fn string, ignoreNotFound bool) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) && ignoreNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

func defaultConfigurationFile() string {
	if v, err := os.UserConfigDir(); err == nil {
		return filepath.Join(v, "wayvoice.yaml")
	}
	return filepath.Join(os.TempDir(), "wayvoice.yaml")
}
