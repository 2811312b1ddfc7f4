package main

import "github.com/govflow/govflow/cmd"

func main() {
	cmd.Execute()
}
