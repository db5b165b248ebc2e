package main

import (
	"os"

	"github.com/Goreek/wordsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
