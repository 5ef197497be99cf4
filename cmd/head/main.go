// Command head prints the first lines or bytes of its inputs.
package main

import (
	"os"

	"github.com/rcarmo/go-head/pkg/applets/head"
	"github.com/rcarmo/go-head/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(head.Run(stdio, os.Args[1:]))
}
