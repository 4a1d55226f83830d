package daemon

import (
	"fmt"
	"strings"
)

type Phase uint8

const (
	PhaseIdle         = Phase(0)
	PhaseRecording    = Phase(1)
	PhaseTranscribing = Phase(2)
)

var (
	AllPhases = Phases{
		PhaseIdle,
		PhaseRecording,
		PhaseTranscribing,
	}
)

func (this *Phase) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "idle":
		*this = PhaseIdle
		return nil
	case "recording":
		*this = PhaseRecording
		return nil
	case "transcribing":
		*this = PhaseTranscribing
		return nil
	default:
		return fmt.Errorf("illegal-session-phase: %s", plain)
	}
}

func (this Phase) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-session-phase-%d", this)
	}
	return string(v)
}

func (this Phase) MarshalText() (text []byte, err error) {
	switch this {
	case PhaseIdle:
		return []byte("idle"), nil
	case PhaseRecording:
		return []byte("recording"), nil
	case PhaseTranscribing:
		return []byte("transcribing"), nil
	default:
		return nil, fmt.Errorf("illegal session phase: %d", this)
	}
}

func (this *Phase) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Phases []Phase

func (this Phases) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Phases) String() string {
	return strings.Join(this.Strings(), ",")
}
