package main

import (
	"github.com/resepfinder/resep/pkg/cli"
)

func main() {
	cli.Execute()
}
