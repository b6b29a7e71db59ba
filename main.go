package main

import "github.com/dkrasov/newsglot/cmd"

func main() {
	cmd.Execute()
}
