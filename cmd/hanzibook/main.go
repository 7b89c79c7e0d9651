package main

import "hanzibook/internal/cli"

func main() {
	cli.Execute()
}
