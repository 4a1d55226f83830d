package inject

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	log "github.com/echocat/slf4g"
)

// Injector brings text into the focused window, either by synthesizing key
// presses (wtype) or by going through the Wayland clipboard and synthesizing
// a paste chord.
type Injector struct {
	Configuration Configuration
}

func (this *Injector) Inject(ctx context.Context, text string) error {
	if this.Configuration.Mode == ModeWtype {
		return this.injectDirectly(ctx, text)
	}
	return this.injectViaClipboard(ctx, text)
}

func (this *Injector) injectDirectly(ctx context.Context, text string) error {
	var args []string
	if d := this.Configuration.resolveDelay(); d > 0 {
		args = append(args, "-s", milliseconds(d))
	}
	if d := this.Configuration.resolveKeyDelay(); d > 0 {
		args = append(args, "-d", milliseconds(d))
	}
	args = append(args, "--", text)

	log.With("mode", ModeWtype).
		With("textLen", len(text)).
		Debug("Injecting text...")

	if err := exec.CommandContext(ctx, "wtype", args...).Run(); err != nil {
		return fmt.Errorf("cannot type text via wtype: %w", err)
	}
	return nil
}

func (this *Injector) injectViaClipboard(ctx context.Context, text string) error {
	log.With("mode", ModeClipboard).
		With("textLen", len(text)).
		Debug("Injecting text...")

	if err := exec.CommandContext(ctx, "wl-copy", "--", text).Run(); err != nil {
		return fmt.Errorf("cannot copy text via wl-copy: %w", err)
	}

	if d := this.Configuration.resolveDelay(); d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}

	// Ctrl+Shift+V pastes in terminals too, where plain Ctrl+V usually
	// means something else.
	err := exec.CommandContext(ctx, "wtype",
		"-M", "ctrl", "-M", "shift", "-k", "v", "-m", "shift", "-m", "ctrl",
	).Run()
	if err != nil {
		return fmt.Errorf("cannot paste text via wtype: %w", err)
	}
	return nil
}

func milliseconds(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
