// Command demo runs the fixed ride-sharing demonstration and prints it to
// stdout. It takes no arguments. Logs go to stderr; set RIDESHARE_LOG_LEVEL
// to "debug" to see every dispatch.
package main

import (
	"context"
	"fmt"
	"os"

	"ridesharing/internal/config"
	"ridesharing/internal/demo"
	"ridesharing/internal/logger"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Any error or panic that reaches here
// becomes exit status 1 with a message on stderr.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			code = 1
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}
	log := logger.New(cfg.Log)

	if err := demo.New(os.Stdout, log).Run(context.Background()); err != nil {
		log.WithError(err).Error("demonstration failed")
		return 1
	}
	return 0
}
