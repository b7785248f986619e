package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-server/cmd"

func main() {
	cmd.Execute()
}
