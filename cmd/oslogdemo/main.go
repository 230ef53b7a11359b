// Command oslogdemo writes one message per level, plus one through each
// dedicated entry point, to Apple's unified logging system. Watch it with
//
//	log stream --level debug --predicate 'subsystem == "com.example.unifiedlog"'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
