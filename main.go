package main

import "github.com/amberleaf/menuforge/cmd"

func main() {
	cmd.Execute()
}
