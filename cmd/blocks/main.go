// blocks inspects and merges YAML and JSON documents with the
// go-blocks-utils helpers.
//
// Usage:
//
//	blocks [global options] <command> [arguments]
//
// Global options:
//
//	-c, --config   settings file (.yaml, .yml or .json)
//	-f, --format   output format: json (default) or yaml
//	    --verbose  log debug messages to stderr
//
// Commands:
//
//	kind [FILE...]   print the kind of each document and of its top-level entries
//	merge FILE...    shallow-merge object documents, later files winning
//	has FILE KEY     report whether the document owns KEY
//	get FILE PATH    print the value found at a dot path
//	dom FILE         classify the children of an HTML document's <body>
//
// A FILE of "-" reads standard input.
//
// Exit codes:
//
//	0: success (has/get: the key was found)
//	1: failure, or the key was not found (has/get)
//	2: usage error
//
// Examples:
//
//	blocks kind config.yaml
//	blocks --format yaml merge defaults.json site.yaml
//	blocks has config.yaml database
//	blocks get config.yaml database.host
//	blocks dom index.html
package main

import (
	"context"
	"os"
)

// Version is the build version, set with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

func main() {
	os.Exit(newApp(os.Stdin, os.Stdout, os.Stderr).run(context.Background(), os.Args))
}
