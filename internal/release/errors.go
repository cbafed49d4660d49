package release

import (
	"fmt"
	"strings"
)

// InvalidBumpKindError reports a chosen value that is outside the closed
// bump-kind enumeration. It is returned before any npm command is built from
// the value.
type InvalidBumpKindError struct {
	// Choice is the rejected value as returned by the chooser.
	Choice string
	// Allowed lists the kinds that were valid at the time of the choice.
	Allowed []BumpKind
}

func (e *InvalidBumpKindError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, k := range e.Allowed {
		allowed[i] = string(k)
	}
	return fmt.Sprintf("invalid bump kind %q: must be one of %s", e.Choice, strings.Join(allowed, ", "))
}
