package main

import (
	"github.com/gekko3d/atelier/cmd"
)

func main() {
	cmd.Execute()
}
