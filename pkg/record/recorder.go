package record

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	log "github.com/echocat/slf4g"
)

// Capture format the recorder is expected to produce. The transcription
// providers accept this directly; nothing downstream resamples.
const (
	Format     = "s16"
	SampleRate = 16000
	Channels   = 1
)

// DefaultArtifactFile is the well-known location the recorder writes to.
// It is overwritten on every recording.
func DefaultArtifactFile() string {
	return filepath.Join(os.TempDir(), "voice-recording.wav")
}

// Process is a live capture process.
type Process interface {
	// Stop kills the process and waits for it to be reaped. It is safe to
	// call on an already exited process and safe to call more than once.
	Stop()
}

type Recorder struct {
	Configuration Configuration
}

// Start spawns the capture process targeting the given file. All stdio of the
// process is discarded.
func (this *Recorder) Start(target string) (Process, error) {
	binary := this.Configuration.Binary
	if binary == "" {
		binary = NewConfiguration().Binary
	}

	cmd := exec.Command(binary,
		"--format", Format,
		"--rate", strconv.Itoa(SampleRate),
		"--channels", strconv.Itoa(Channels),
		target,
	)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("cannot start recorder %q: %w", binary, err)
	}

	log.With("binary", binary).
		With("pid", cmd.Process.Pid).
		With("target", target).
		Debug("Recorder started.")

	return &process{cmd}, nil
}

type process struct {
	cmd *exec.Cmd
}

func (this *process) Stop() {
	if err := this.cmd.Process.Kill(); err != nil {
		log.With("pid", this.cmd.Process.Pid).
			WithError(err).
			Debug("Recorder was already gone on kill.")
	}
	_ = this.cmd.Wait()
}
