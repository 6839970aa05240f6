package main

import (
	"os"

	"github.com/leonardinius/pepl/cmd"
)

func main() {
	app := cmd.NewPeplApp(os.Stdout, os.Stderr)
	os.Exit(app.Main(os.Args[1:]))
}
