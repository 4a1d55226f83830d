package common

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
)

type FlagHolder interface {
	Flag(name, help string) *kingpin.FlagClause
}

// TrackingFlagHolder registers flags at a delegate and remembers, per flag,
// whether the user actually provided it - on the command line or through its
// environment variable. This makes an explicitly provided zero value
// (--transcription.provider=groq, --no-replacements.use-defaults)
// distinguishable from a flag which was never touched.
type TrackingFlagHolder struct {
	Delegate FlagHolder

	flags map[string]*trackedFlag
}

func (this *TrackingFlagHolder) Flag(name, help string) *kingpin.FlagClause {
	clause := this.Delegate.Flag(name, help)

	tracked := &trackedFlag{clause: clause}
	clause.IsSetByUser(&tracked.setByUser)

	if this.flags == nil {
		this.flags = make(map[string]*trackedFlag)
	}
	this.flags[name] = tracked

	return clause
}

// WasProvided reports whether the named flag was set on the command line or
// through a non-empty environment variable - the same conditions under which
// kingpin applies a value at all. Flags not registered through this holder
// count as not provided.
func (this *TrackingFlagHolder) WasProvided(name string) bool {
	tracked, ok := this.flags[name]
	if !ok {
		return false
	}
	if tracked.setByUser {
		return true
	}
	if envar := tracked.clause.Model().Envar; envar != "" {
		return os.Getenv(envar) != ""
	}
	return false
}

type trackedFlag struct {
	clause    *kingpin.FlagClause
	setByUser bool
}
