package main

import (
	"github.com/bnema/asne/cmd"
	"github.com/bnema/asne/internal/adapters/process"
)

func main() {
	process.Mirror(cmd.Execute())
}
