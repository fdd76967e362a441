package main

import "github.com/notargets/DGDiffusion/cmd"

func main() {
	cmd.Execute()
}
