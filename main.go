package main

import "github.com/kdam/portfolio/cmd"

func main() {
	cmd.Execute()
}
