package main

import "github.com/quickwick/rpgvault/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
