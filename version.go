package paperwallet

import "fmt"

// Release number of the state machine. Any change to the holder address
// derivation or the holder layout requires a major release.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// GitCommit is set by build flags.
var GitCommit = ""

// Version returns the release number, followed by the commit when known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit != "" {
		v += " " + GitCommit
	}
	return v
}
