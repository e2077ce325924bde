package main

import "github.com/msmelabs/cashintel/cmd"

func main() {
	cmd.Execute()
}
