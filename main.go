package main

import (
	"os"

	"github.com/lioia/corpus-pagerank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
