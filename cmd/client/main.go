package main

import "murojaat/cmd/client/cmd"

func main() {
	cmd.Execute()
}
