package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jedisct1/go-feistel"
	"github.com/urfave/cli"
)

const defaultDebugLevel = "info"

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[feistel] %v\n", err)
	os.Exit(1)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "feistel"
	app.Version = "0.1.0"
	app.Usage = "encrypt and decrypt 16-bit blocks with a toy Feistel cipher"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name: "compat",
			Usage: "print the all-zero sentinel block instead of " +
				"failing when a block, key or mode is rejected",
		},
		cli.StringFlag{
			Name:  "debuglevel",
			Value: defaultDebugLevel,
			Usage: "logging level: trace, debug, info, warn, error, " +
				"critical or off",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		encryptCommand,
		decryptCommand,
		transformCommand,
		traceCommand,
		sboxCommand,
	}

	return app
}

// setupLogging installs a stderr backed logger for the cipher package at the
// requested level.
func setupLogging(ctx *cli.Context) error {
	levelStr := ctx.String("debuglevel")
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		return fmt.Errorf("invalid debug level %q", levelStr)
	}

	w := ctx.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}

	logger := btclog.NewBackend(w).Logger(feistel.Subsystem)
	logger.SetLevel(level)
	feistel.UseLogger(logger)

	return nil
}
