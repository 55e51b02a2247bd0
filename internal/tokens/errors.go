package tokens

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution faults. Use errors.Is to match them.
var (
	ErrNotFound         = errors.New("token not found")
	ErrCycle            = errors.New("reference cycle")
	ErrMissingReference = errors.New("missing reference")
)

// CycleError reports a reference chain that revisits a path.
type CycleError struct {
	Chain []string // "a", "b", "a"
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reference cycle: %s", strings.Join(e.Chain, " -> "))
}

// Is matches ErrCycle.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// MissingError reports a reference whose target path does not exist.
type MissingError struct {
	From string // path holding the reference
	Path string // referenced path
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing reference: %s -> %s", e.From, e.Path)
}

// Is matches ErrMissingReference.
func (e *MissingError) Is(target error) bool {
	return target == ErrMissingReference
}
