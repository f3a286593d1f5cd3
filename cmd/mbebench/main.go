// cmd/mbebench/main.go
package main

import (
	cmd "github.com/hawaiilawtech/mbebench/internal/cli"
)

// main hands control to the cobra root command; commands, flags,
// and configuration all live in internal/cli.
func main() {
	cmd.Execute()
}
