// Command excat mines C++ sources for exception call sites and writes a JSON catalog.
package main

import "github.com/mouse-blink/excat/cmd"

func main() {
	cmd.Execute()
}
