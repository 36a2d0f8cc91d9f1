package main

import "github.com/meza-digital/dniscan/cmd/dniscan/cmd"

func main() {
	cmd.Execute()
}
