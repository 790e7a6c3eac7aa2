package main

import "github.com/jsphweid/gct/cmd"

func main() {
	cmd.Execute()
}
