// Command valvenet reads a valve scan and prints the most pressure one or
// two agents can release.
//
//	valvenet solve input.txt
//	valvenet solve --agents 2 --plan < input.txt
//	valvenet solve --config valvenet.yaml input.txt
//	valvenet distances input.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valvenet:", err)
		os.Exit(1)
	}
}
