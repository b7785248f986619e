package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-pick/cmd"

func main() {
	cmd.Execute()
}
