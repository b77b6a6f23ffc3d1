// Package xerrors marks the contract violations of spec §7: an unknown
// id passed to a store mutation or to Collection.Update/Adjust, or a
// uniqueness conflict in a unique hash index. (Querying an empty Mean,
// Min, or Max is not a violation: those report (zero, false).) These
// are bugs in the caller, not user-visible absences, so they panic rather than return
// an error value. A collection that has panicked this way is
// considered poisoned; no partial-success recovery is attempted.
package xerrors

import "fmt"

// ViolationError is the panic value raised for a contract violation.
type ViolationError struct {
	Op  string
	Msg string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("colidx: %s: %s", e.Op, e.Msg)
}

// Violate panics with a *ViolationError built from op and a formatted
// message. It never returns.
func Violate(op, format string, args ...any) {
	panic(&ViolationError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
