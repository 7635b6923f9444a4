package main

import (
	"os"

	"github.com/bft-labs/rainwater/internal/cli"
	"github.com/bft-labs/rainwater/pkg/log"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.NewZerologAdapter().Error("rainwater", log.Err(err))
		os.Exit(1)
	}
}
