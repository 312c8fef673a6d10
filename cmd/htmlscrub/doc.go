// Package htmlscrub provides the command-line interface for the htmlscrub
// tool. It configures subcommands (scrub, hash, scan, changed, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/htmlscrub/htmlscrub/cmd/htmlscrub"
//	func main() { htmlscrub.Execute() }
package htmlscrub
