package main

import "github.com/katalvlaran/gridnav/cmd/gridnav/cmd"

func main() {
	cmd.Execute()
}
