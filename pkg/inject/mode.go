package inject

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode uint8

const (
	ModeClipboard = Mode(0)
	ModeWtype     = Mode(1)

	ModeDefault = ModeClipboard
)

var (
	AllModes = Modes{
		ModeClipboard,
		ModeWtype,
	}
)

func (this *Mode) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "clipboard":
		*this = ModeClipboard
		return nil
	case "wtype":
		*this = ModeWtype
		return nil
	default:
		return fmt.Errorf("illegal-injection-mode: %s", plain)
	}
}

func (this Mode) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-injection-mode-%d", this)
	}
	return string(v)
}

func (this Mode) MarshalText() (text []byte, err error) {
	switch this {
	case ModeClipboard:
		return []byte("clipboard"), nil
	case ModeWtype:
		return []byte("wtype"), nil
	default:
		return nil, fmt.Errorf("illegal injection mode: %d", this)
	}
}

func (this *Mode) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

func (this *Mode) UnmarshalYAML(node *yaml.Node) error {
	var plain string
	if err := node.Decode(&plain); err != nil {
		return err
	}
	return this.Set(plain)
}

type Modes []Mode

func (this Modes) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Modes) String() string {
	return strings.Join(this.Strings(), ",")
}
