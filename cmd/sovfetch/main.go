package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
	ExitNetworkError = 3
	ExitStorageError = 5
	ExitVerifyFailed = 7
)

// stdout receives command output; progress goes to stderr.
var stdout io.Writer = os.Stdout

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runFetch(nil)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "fetch":
		return runFetch(cmdArgs)
	case "list":
		return runList(cmdArgs)
	case "verify":
		return runVerify(cmdArgs)
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: sovfetch [command] [options]

Download Statement of Vote precinct CSVs from the Statewide Database.
Without a command, sovfetch runs fetch with the built-in catalog.

Commands:
  fetch     Download every catalog file to its destination (default)
  list      Print source URL and destination for every catalog file
  verify    Check that every destination file exists

Run 'sovfetch <command> -h' for command-specific help.`)
}
