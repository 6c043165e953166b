package hedge

import "fmt"

// debugAssert panics when cond is false, but only in builds made with the
// hedgedebug tag. Release builds compile the check away and never format msg.
func debugAssert(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic("hedge: assertion error: " + fmt.Sprintf(format, args...))
	}
}
