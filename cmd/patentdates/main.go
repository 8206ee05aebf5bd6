package main

import "patentdates/internal/cli"

func main() {
	cli.Execute()
}
