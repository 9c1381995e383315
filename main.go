package main

import "github.com/fablemind/fablemind/cmd"

func main() {
	cmd.Execute()
}
