package main

import "github.com/aleksamarkoni/uva-command-line/cmd"

func main() {
	cmd.Execute()
}
