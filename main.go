package main

import "game-catalog/cmd"

func main() {
	cmd.Execute()
}
