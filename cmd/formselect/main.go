package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("formselect failed", "err", err)
		os.Exit(1)
	}
}
