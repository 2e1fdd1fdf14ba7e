package main

import "github.com/goliatone/go-proptree/cmd/proptree/cmd"

func main() {
	cmd.Execute()
}
