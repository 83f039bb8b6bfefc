package main

import "github.com/gaurav-prasanna/deckparse/cmd"

func main() {
	cmd.Execute()
}
