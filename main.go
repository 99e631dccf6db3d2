package main

import "unit-converter/cmd"

func main() {
	cmd.Execute()
}
