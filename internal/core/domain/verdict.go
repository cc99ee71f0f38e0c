package domain

import (
	"fmt"
	"strings"
	"time"
)

// Verdict is the staleness decision for one module, or one file of a module.
type Verdict struct {
	Module string
	// File is set when the verdict covers a single declared file.
	File   string
	Output string
	Stale  bool
	// OutputTime is the zero time when the output does not exist.
	OutputTime time.Time
	// Youngest is the youngest transitive timestamp over all roots.
	Youngest time.Time
	// YoungestFile is the path of the file that produced Youngest.
	YoungestFile string
	// Chain is the include path from a root to YoungestFile.
	Chain []string
}

// Reason explains the verdict in one line.
func (v Verdict) Reason() string {
	switch {
	case v.Stale && v.OutputTime.IsZero():
		return fmt.Sprintf("output %s doesn't exist", v.Output)
	case v.Stale:
		msg := fmt.Sprintf("output %s older than most recent input %s", v.Output, v.YoungestFile)
		if len(v.Chain) > 1 {
			msg += " (via " + strings.Join(v.Chain, " -> ") + ")"
		}
		return msg
	default:
		return fmt.Sprintf("output %s up to date", v.Output)
	}
}

// Status returns "stale" or "up-to-date".
func (v Verdict) Status() string {
	if v.Stale {
		return "stale"
	}
	return "up-to-date"
}
