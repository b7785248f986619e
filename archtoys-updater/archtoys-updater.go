package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-updater/cmd"

func main() {
	cmd.Execute()
}
