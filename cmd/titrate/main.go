package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/titrate/logger"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		logger.Logger.Errorw("titrate failed", logger.FieldError, err)
		pterm.Error.WithWriter(os.Stderr).Println(err)
		logger.Cleanup()
		os.Exit(1)
	}
	logger.Cleanup()
}
