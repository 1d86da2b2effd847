package main

import "socialite/internal/cmd"

func main() {
	cmd.Run()
}
