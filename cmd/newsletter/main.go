// Command newsletter edits, renders, lints and exports Outlook-compatible
// newsletter issues.
//
//	newsletter serve                      # editor API on HTTP_ADDR
//	newsletter new -t minimal -o nr5.json # start a project file
//	newsletter lint nr5.json              # compatibility report
//	newsletter render nr5.json -o nr5.html
//	newsletter export eml nr5.json
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
