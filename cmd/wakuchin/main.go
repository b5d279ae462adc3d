package main

import "github.com/wakuchin-go/wakuchin/internal/cmd"

func main() {
	cmd.Execute()
}
