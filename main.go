package main

import "github.com/Rorical/RoriLingo/cmd"

func main() {
	cmd.Execute()
}
