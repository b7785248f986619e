package main

import "github.com/archtoys/archtoys-tools/cmd/archtoys-packager/cmd"

func main() {
	cmd.Execute()
}
