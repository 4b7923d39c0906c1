package main

import (
	"log"
	"os"

	"sandboxcore/tools/effectsgen/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
