package common

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration which reads and writes the human friendly
// Go notation ("250ms", "1.5s") in flags and configuration files.
type Duration time.Duration

func (this *Duration) Set(plain string) error {
	v, err := time.ParseDuration(strings.TrimSpace(plain))
	if err != nil {
		return fmt.Errorf("illegal-duration: %s", plain)
	}
	*this = Duration(v)
	return nil
}

func (this Duration) String() string {
	return time.Duration(this).String()
}

func (this Duration) AsDuration() time.Duration {
	return time.Duration(this)
}

func (this Duration) IsZero() bool {
	return this == 0
}

func (this Duration) MarshalText() (text []byte, err error) {
	return []byte(this.String()), nil
}

func (this *Duration) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

func (this *Duration) UnmarshalYAML(node *yaml.Node) error {
	var plain string
	if err := node.Decode(&plain); err != nil {
		return err
	}
	return this.Set(plain)
}
