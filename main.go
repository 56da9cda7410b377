package main

import "zeitblatt/cmd"

func main() {
	cmd.Execute()
}
