package app

import (
	"context"
	"fmt"
	"os"

	"github.com/thrawny/wayvoice/pkg/common"
	"github.com/thrawny/wayvoice/pkg/daemon"
	"github.com/thrawny/wayvoice/pkg/record"
	"github.com/thrawny/wayvoice/pkg/transcribe"
)

// Once records in the foreground until Enter is pressed, transcribes the
// capture and prints the rewritten transcript to stdout. The daemon and its
// control endpoint are not involved at all.
func (this *App) Once(ctx context.Context) error {
	artifact := record.DefaultArtifactFile()
	_ = os.Remove(artifact)

	recorder := record.Recorder{Configuration: this.config.Recording}
	process, err := recorder.Start(artifact)
	if err != nil {
		return err
	}

	err = common.AwaitEnterFromTerminal("Recording... (press Enter to stop)")
	process.Stop()
	if err != nil {
		return err
	}

	fi, err := os.Stat(artifact)
	if err != nil {
		return fmt.Errorf("no audio artifact was created: %w", err)
	}
	if fi.Size() < daemon.MinArtifactBytes {
		return fmt.Errorf("no audio recorded (artifact of %d bytes is too small)", fi.Size())
	}

	audio, err := os.ReadFile(artifact)
	if err != nil {
		return fmt.Errorf("cannot read audio artifact: %w", err)
	}

	conf := this.config.Transcription
	if _, kErr := conf.ApiKey(); kErr != nil {
		target := &conf.GroqApiKey
		if conf.Provider == transcribe.ProviderOpenai {
			target = &conf.OpenaiApiKey
		}
		if err := common.RequestSecretFromTerminal(target, conf.Provider.String()+" API key"); err != nil {
			return kErr
		}
	}

	fmt.Fprintln(os.Stderr, "Transcribing...")

	transcriber := transcribe.Client{Configuration: conf}
	transcript, err := transcriber.Transcribe(ctx, audio)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	fmt.Println(this.config.Replacements.Effective().Apply(transcript))
	return nil
}
