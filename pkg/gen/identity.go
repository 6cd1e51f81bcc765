package gen

import (
	"fmt"
	"sync/atomic"
)

// generatorID is the only process-wide mutable state in the package: a
// monotonically increasing counter backing default source identifiers.
// IDs are never reused, even across generator restarts.
var generatorID atomic.Uint64

// nextSourceID returns a unique default source identifier of the form
// "generator-<8 hex digits>". Safe to call from concurrent constructors.
func nextSourceID() string {
	return fmt.Sprintf("generator-%08x", generatorID.Add(1)-1)
}
