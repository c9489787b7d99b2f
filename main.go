package main

import "github.com/theirongolddev/hustle/cmd"

func main() {
	cmd.Execute()
}
