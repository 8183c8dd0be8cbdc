// Command desim runs the print-time scenarios on the process-wide scheduler.
package main

import (
	"github.com/sarchlab/desim/desim/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	if err := cmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
