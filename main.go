package main

import "github.com/wundergraph/graphql-directives/cmd"

func main() {
	cmd.Execute()
}
