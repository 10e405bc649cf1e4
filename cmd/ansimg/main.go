package main

import "github.com/nitasn/terminal-ansi-image/cmd/ansimg/cmd"

func main() {
	cmd.Execute()
}
