//go:build burstdebug

package flight

import "fmt"

// debugContracts is on with -tags burstdebug: contract violations panic.
const debugContracts = true

func contractViolation(format string, args ...any) {
	panic(fmt.Sprintf("flight: contract violation: "+format, args...))
}
