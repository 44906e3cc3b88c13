package main

import "github.com/jsphweid/tonality/cmd"

func main() {
	cmd.Execute()
}
