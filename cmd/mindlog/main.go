// mindlog - An emotion card generator
//
// mindlog turns a selection of emotions into a soft, grainy colour card and
// writes it as PNG, SVG, HTML or JSON, or lets you play with it in the terminal.
package main

import "github.com/jmylchreest/mindlog/internal/cli"

func main() {
	cli.Execute()
}
