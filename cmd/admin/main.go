// Command admin inspects and edits any table from the command line, using the
// same registry as the /admin HTTP routes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openRegistry).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
