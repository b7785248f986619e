package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-bundler/cmd"

func main() {
	cmd.Execute()
}
