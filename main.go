package main

import "github.com/dotcommander/thinkcheck/cmd"

func main() {
	cmd.Execute()
}
