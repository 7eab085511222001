package main

import "github.com/riverfjs/mdenv-go/internal/cli"

func main() {
	cli.Execute()
}
