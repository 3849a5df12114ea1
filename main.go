package main

import "github.com/bgraf/elevprofile/cmd"

func main() {
	cmd.Execute()
}
