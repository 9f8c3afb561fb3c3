package main

import "surrogatetk/cmd"

func main() {
	cmd.Execute()
}
