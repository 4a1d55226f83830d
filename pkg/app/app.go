package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/echocat/slf4g"

	"github.com/thrawny/wayvoice/pkg/common"
	"github.com/thrawny/wayvoice/pkg/daemon"
	"github.com/thrawny/wayvoice/pkg/inject"
	"github.com/thrawny/wayvoice/pkg/ipc"
	"github.com/thrawny/wayvoice/pkg/record"
	"github.com/thrawny/wayvoice/pkg/transcribe"
)

func NewApp() *App {
	return &App{
		config: NewConfiguration(),
	}
}

type App struct {
	ConfigurationFile string

	flags           *common.TrackingFlagHolder
	configFromFlags Configuration
	config          Configuration
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.flags = &common.TrackingFlagHolder{Delegate: using}
	this.configFromFlags.SetupConfiguration(this.flags)

	this.flags.Flag("configuration", "Defines the file from which the configuration should be loaded.").
		Short('c').
		Envar("VOICE_CONFIG").
		StringVar(&this.ConfigurationFile)
}

// Initialize layers the configuration: flags and environment win over the
// configuration file, the file wins over the built-in defaults. Only flags
// the user actually provided are applied, so an explicitly provided zero
// value (--transcription.provider=groq, --no-replacements.use-defaults)
// overrides the file too.
func (this *App) Initialize() error {
	fn := this.ConfigurationFile
	if fn == "" {
		fn = defaultConfigurationFile()
	}

	if err := this.config.loadFromFile(fn, true); err != nil {
		return err
	}
	this.configFromFlags.ApplyAsOverrides(this.wasProvided, &this.config)

	return nil
}

func (this *App) wasProvided(flag string) bool {
	if v := this.flags; v != nil {
		return v.WasProvided(flag)
	}
	return false
}

// Serve runs the dictation daemon until the context is done or an interrupt
// signal arrives. The interrupt runs the session's cancel path before the
// server goes down.
func (this *App) Serve(ctx context.Context) error {
	session := &daemon.Daemon{
		Recorder:     &record.Recorder{Configuration: this.config.Recording},
		Transcriber:  &transcribe.Client{Configuration: this.config.Transcription},
		Replacements: this.config.Replacements.Effective(),
		Injector:     &inject.Injector{Configuration: this.config.Injection},
		Notifier:     &inject.Notifier{},
		ArtifactFile: record.DefaultArtifactFile(),
	}
	defer func() {
		_ = session.Dispose()
	}()

	server := &ipc.Server{Session: session}
	if err := server.Initialize(); err != nil {
		return err
	}
	defer func() {
		_ = server.Dispose()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case s := <-sigs:
			log.With("signal", s).
				Info("Terminated. Going down...")
			server.Execute(ctx, ipc.CommandCancel)
			cancel()
		case <-ctx.Done():
		}
	}()

	return server.Run(ctx)
}
