package hedge

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "hedge: ", log.LstdFlags)

// SetLogger routes the package's trace output to l. Passing nil silences it
// again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "hedge: ", log.LstdFlags)
	}
	logger = l
}
