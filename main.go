package main

import "dispute-reconciler/cmd"

func main() {
	cmd.Execute()
}
