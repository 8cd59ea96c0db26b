package main

import "github-tracker/cmd"

func main() {
	cmd.Execute()
}
