package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-verify/cmd"

func main() {
	cmd.Execute()
}
