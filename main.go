package main

import (
	"os"

	"github.com/nirajyt2022-source/edTech-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
