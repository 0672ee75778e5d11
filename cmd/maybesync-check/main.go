// Package main implements the maybesync-check companion tool.
//
// The maybe-sync facade has one correctness-critical caller obligation the
// type system cannot enforce in singlethread builds: code that actually
// hands a value to another goroutine must require the real Transferable or
// Shareable capability, never the vacuous Maybe* markers. This tool flags
// the common violations statically:
//
//  1. A go statement in a file constrained to the singlethread build.
//     Serial-mode code spawning goroutines is exactly the misuse the
//     permissive markers cannot catch.
//  2. A go statement in a file that imports the facade but never references
//     a real capability. Advisory: the transfer site may be relying on a
//     marker bound.
//  3. Source importing the facade while the module's go.mod does not
//     require it.
//
// Usage:
//
//	maybesync-check [directory ...]
//
// Directories default to the current one. Exit status is 1 when findings
// exist, 2 on errors.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			fmt.Printf("maybesync-check version %s\n", version)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	exit := 0
	for _, dir := range args {
		checker := NewChecker()
		if err := checker.CheckDir(dir); err != nil {
			fmt.Fprintf(os.Stderr, "maybesync-check: %s: %v\n", dir, err)
			exit = 2
			continue
		}
		if checker.ImportsFacade() {
			required, err := RequiresFacade(dir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "maybesync-check: %s: %v\n", dir, err)
				exit = 2
			} else if !required {
				fmt.Printf("%s: source imports %s but go.mod does not require it\n", dir, facadeModule)
				if exit == 0 {
					exit = 1
				}
			}
		}
		for _, f := range checker.Findings() {
			fmt.Println(f)
		}
		if len(checker.Findings()) > 0 && exit == 0 {
			exit = 1
		}
	}
	os.Exit(exit)
}

func printUsage() {
	fmt.Print(`maybesync-check - static misuse checks for the maybe-sync facade

USAGE:
    maybesync-check [directory ...]

CHECKS:
    serial-go-stmt    go statement in a singlethread-only file
    marker-transfer   go statement in a file using only the Maybe* markers
    missing-require   facade imported but not required in go.mod

EXAMPLES:
    maybesync-check .
    maybesync-check ./internal/worker ./internal/loader

Pattern arguments like ./... are not expanded; pass directories. Each
directory is walked recursively.
`)
}
