package daemon

import (
	"context"
	"fmt"
	"os"

	log "github.com/echocat/slf4g"

	"github.com/thrawny/wayvoice/pkg/record"
	"github.com/thrawny/wayvoice/pkg/text"
)

// MinArtifactBytes is the size below which a capture is treated as silence
// and never sent to the transcription provider.
const MinArtifactBytes = 1000

// Response tokens which do not correspond to a phase.
const (
	ResponseBusy      = "busy"
	ResponseCancelled = "cancelled"
)

type Recorder interface {
	Start(target string) (record.Process, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type Injector interface {
	Inject(ctx context.Context, text string) error
}

// Notifier is pure user feedback; implementations never fail the caller.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Daemon is the dictation session state machine. It owns the only recorder
// process that may be alive at a time; the recorder handle is held exactly
// while the phase is recording.
//
// A Daemon is not safe for concurrent use. Callers have to serialize access
// to it; the control server does so with one exclusive lock.
type Daemon struct {
	Recorder     Recorder
	Transcriber  Transcriber
	Replacements text.Replacements
	Injector     Injector
	Notifier     Notifier

	// ArtifactFile is the well-known location the recorder writes to. It is
	// overwritten on every recording.
	ArtifactFile string

	phase    Phase
	recorder record.Process
}

// Status reports the current phase. It never blocks and never mutates.
func (this *Daemon) Status() string {
	return this.phase.String()
}

// Toggle drives the session to its next phase. Stopping a recording runs the
// whole transcribe/replace/inject pipeline before returning; the returned
// token still reads "transcribing" because that is what the session went
// through. While such a pipeline is in flight a further toggle answers
// "busy" without side effects.
func (this *Daemon) Toggle(ctx context.Context) string {
	switch this.phase {
	case PhaseRecording:
		this.stopAndTranscribe(ctx)
		return PhaseTranscribing.String()
	case PhaseTranscribing:
		return ResponseBusy
	default:
		return this.startRecording(ctx).String()
	}
}

// Cancel kills a live recorder (if any), forces the session back to idle and
// always answers "cancelled", regardless of the previous phase.
func (this *Daemon) Cancel(ctx context.Context) string {
	this.stopRecorder()
	this.phase = PhaseIdle
	this.Notifier.Notify(ctx, "Cancelled")
	return ResponseCancelled
}

func (this *Daemon) startRecording(ctx context.Context) Phase {
	_ = os.Remove(this.ArtifactFile)

	process, err := this.Recorder.Start(this.ArtifactFile)
	if err != nil {
		log.WithError(err).
			Error("Cannot start recording.")
		this.Notifier.Notify(ctx, "Failed to start recording")
		return this.phase
	}

	this.recorder = process
	this.phase = PhaseRecording
	this.Notifier.Notify(ctx, "Recording...")
	return this.phase
}

func (this *Daemon) stopAndTranscribe(ctx context.Context) {
	this.stopRecorder()

	fi, err := os.Stat(this.ArtifactFile)
	if err != nil {
		log.WithError(err).
			Error("Recorder did not produce an audio artifact.")
		this.Notifier.Notify(ctx, "Recording failed")
		this.phase = PhaseIdle
		return
	}
	if fi.Size() < MinArtifactBytes {
		log.With("bytes", fi.Size()).
			Info("Audio artifact too small; treating as silence.")
		this.Notifier.Notify(ctx, "No audio recorded")
		this.phase = PhaseIdle
		return
	}

	this.phase = PhaseTranscribing
	this.Notifier.Notify(ctx, "Transcribing...")

	audio, err := os.ReadFile(this.ArtifactFile)
	if err != nil {
		log.WithError(err).
			Error("Cannot read audio artifact.")
		this.Notifier.Notify(ctx, fmt.Sprintf("Error: %v", err))
		this.phase = PhaseIdle
		return
	}

	transcript, err := this.Transcriber.Transcribe(ctx, audio)
	if err != nil {
		log.WithError(err).
			Error("Transcription failed.")
		this.Notifier.Notify(ctx, fmt.Sprintf("Error: %v", err))
		this.phase = PhaseIdle
		return
	}

	result := this.Replacements.Apply(transcript)
	log.With("raw", transcript).
		With("replaced", result).
		Debug("Transcript received.")

	if result != "" {
		if err := this.Injector.Inject(ctx, result); err != nil {
			log.WithError(err).
				Error("Cannot inject text.")
			this.Notifier.Notify(ctx, "Injection failed")
		}
	}

	this.phase = PhaseIdle
}

func (this *Daemon) stopRecorder() {
	if v := this.recorder; v != nil {
		this.recorder = nil
		v.Stop()
	}
}

// Dispose releases a still live recorder process, if any.
func (this *Daemon) Dispose() error {
	this.stopRecorder()
	this.phase = PhaseIdle
	return nil
}
