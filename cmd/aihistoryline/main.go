package main

import (
	"log"
	"os"

	"github.com/racuca/AIHistoryLine/internal/cli"
)

var version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
