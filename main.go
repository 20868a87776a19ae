package main

import "github.com/they4kman/xox/cmd"

func main() {
	cmd.Execute()
}
