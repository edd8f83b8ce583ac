//go:build !burstdebug

package flight

// debugContracts is off in regular builds: contract violations are silent no-ops.
const debugContracts = false

func contractViolation(string, ...any) {}
