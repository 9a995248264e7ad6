package main

import "csvsplit/internal/cli"

func main() {
	cli.Execute()
}
