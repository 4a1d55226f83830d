package ipc

import (
	"fmt"
	"strings"
)

type Command uint8

const (
	CommandToggle = Command(0)
	CommandCancel = Command(1)
	CommandStatus = Command(2)
)

var (
	AllCommands = Commands{
		CommandToggle,
		CommandCancel,
		CommandStatus,
	}
)

func (this *Command) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "toggle":
		*this = CommandToggle
		return nil
	case "cancel":
		*this = CommandCancel
		return nil
	case "status":
		*this = CommandStatus
		return nil
	default:
		return fmt.Errorf("illegal-control-command: %s", plain)
	}
}

func (this Command) String() string {
	switch this {
	case CommandToggle:
		return "toggle"
	case CommandCancel:
		return "cancel"
	case CommandStatus:
		return "status"
	default:
		return fmt.Sprintf("illegal-control-command-%d", this)
	}
}

type Commands []Command

func (this Commands) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Commands) String() string {
	return strings.Join(this.Strings(), ",")
}
