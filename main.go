package main

import "github.com/kamusis/vizsheet/cmd"

func main() {
	cmd.Execute()
}
