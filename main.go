package main

import "github.com/mquin/labdiff/cmd"

func main() {
	cmd.Execute()
}
