package main

import "github.com/npmship/npmship/cmd"

func main() {
	cmd.Execute()
}
