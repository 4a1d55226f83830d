package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/echocat/slf4g/native"
	_ "github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"

	"github.com/thrawny/wayvoice/pkg/app"
	"github.com/thrawny/wayvoice/pkg/common"
	"github.com/thrawny/wayvoice/pkg/daemon"
	"github.com/thrawny/wayvoice/pkg/ipc"
)

func main() {
	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(),
		"json": formatter.NewJson(),
	}

	a := app.NewApp()

	cmd := kingpin.New("wayvoice", "Voice-to-text for Wayland.")
	a.SetupConfiguration(cmd)

	cmd.Flag("log.level", "").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("auto").
		SetValue(lv.Consumer.Formatter.ColorMode)

	cmd.Command("serve", "Runs the dictation daemon.").
		Action(func(*kingpin.ParseContext) error {
			if err := a.Initialize(); err != nil {
				return err
			}
			return a.Serve(context.Background())
		})

	registerClientCommand(cmd, "toggle", "Starts a recording or stops it and types the transcript.", ipc.CommandToggle)
	registerClientCommand(cmd, "cancel", "Cancels the current operation.", ipc.CommandCancel)
	registerClientCommand(cmd, "status", "Prints the daemon's current phase ("+daemon.AllPhases.String()+").", ipc.CommandStatus)

	cmd.Command("once", "Records until Enter is pressed, transcribes and prints the result.").
		Action(func(*kingpin.ParseContext) error {
			if err := a.Initialize(); err != nil {
				return err
			}
			return a.Once(context.Background())
		})

	kingpin.MustParse(cmd.Parse(os.Args[1:]))
}

func registerClientCommand(cmd *kingpin.Application, name, help string, command ipc.Command) {
	cmd.Command(name, help).
		Action(func(*kingpin.ParseContext) error {
			response, err := ipc.Send(ipc.SocketPath(), command)
			if _, ok := common.AsError[*net.OpError](err); ok {
				return fmt.Errorf("%w (is the daemon running?)", err)
			} else if err != nil {
				return err
			}
			fmt.Println(response)
			return nil
		})
}
