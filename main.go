package main

import "gmauleon.org/tmt/cmd"

func main() {
	cmd.Execute()
}
