package main

import "github.com/pomobar/pomobar/cmd"

func main() {
	cmd.Execute()
}
