package main

import (
	"os"

	"github.com/docatom/docatom-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
