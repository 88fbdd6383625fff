package provisioning

import (
	"fmt"
	"io"
	"os"
)

// Observer receives operator-facing progress output.
type Observer interface {
	// Printf emits a free-form progress line.
	Printf(format string, v ...any)

	// Call reports the outcome of a single controller call.
	Call(action string, err error)
}

// ConsoleObserver implements Observer on a writer, stdout by default.
type ConsoleObserver struct {
	Out io.Writer
}

// NewConsoleObserver creates a stdout-backed observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{Out: os.Stdout}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	fmt.Fprintf(o.Out, format+"\n", v...)
}

// Call implements Observer.
func (o *ConsoleObserver) Call(action string, err error) {
	if err != nil {
		fmt.Fprintf(o.Out, "%-24s %v\n", action+":", err)
		return
	}
	fmt.Fprintf(o.Out, "%-24s ok\n", action+":")
}

// FoundStatus renders a "Found N thing(s) ..." line with pluralization.
func FoundStatus(category string, count int, suffix string) string {
	plural := ""
	if count != 1 {
		plural = "s"
	}
	return fmt.Sprintf("* Found %d %s%s %s.", count, category, plural, suffix)
}
