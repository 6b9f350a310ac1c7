package main

import "github.com/pfrederiksen/hltv-cal/internal/cli"

func main() {
	cli.Execute()
}
