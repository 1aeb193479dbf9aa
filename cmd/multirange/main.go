package main

import "github.com/aalvaropc/multirange/internal/cli"

func main() {
	cli.Execute()
}
