package inject

import (
	"context"
	"os/exec"

	log "github.com/echocat/slf4g"
)

// Notifier shows short desktop notifications via notify-send. Notifications
// are pure user feedback; a failure to show one is logged and swallowed.
type Notifier struct{}

func (this *Notifier) Notify(ctx context.Context, message string) {
	err := exec.CommandContext(ctx, "notify-send",
		"--app-name=wayvoice",
		"--expire-time=2000",
		"wayvoice", message,
	).Run()
	if err != nil {
		log.With("message", message).
			WithError(err).
			Debug("Cannot show notification.")
	}
}
