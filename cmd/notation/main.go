// Command notation converts and evaluates expressions, printing each as a row
// of its original text, postfix and prefix forms, and result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
