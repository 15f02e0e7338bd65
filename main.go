package main

import "codecheck/cmd"

func main() {
	cmd.Execute()
}
