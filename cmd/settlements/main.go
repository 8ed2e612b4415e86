package main

import (
	"github.com/imelnikov/settlements/internal/cli"
)

func main() {
	cli.Execute()
}
