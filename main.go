package main

import "pensionproj/cmd"

func main() {
	cmd.Execute()
}
