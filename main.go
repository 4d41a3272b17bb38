package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"natanbot/cmd"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	envFile := flag.String("env-file", ".env", "Environment file to load")
	dataDir := flag.String("data-dir", "", "Directory holding the JSON stores (overrides DATA_DIR)")
	logLevel := flag.String("log-level", "", "Log level (overrides LOG_LEVEL)")
	// Subcommand arguments may be negative amounts
	flag.CommandLine.SetInterspersed(false)
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to load %s: %v", *envFile, err)
	}
	// Flags win over the environment
	if flag.CommandLine.Changed("data-dir") {
		os.Setenv("DATA_DIR", *dataDir)
	}
	if flag.CommandLine.Changed("log-level") {
		os.Setenv("LOG_LEVEL", *logLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := flag.Args()
	if len(args) > 0 {
		var err error
		switch args[0] {
		case "set-balance":
			err = cmd.SetBalance(ctx, args[1:])
		case "sweep-vip":
			err = cmd.SweepVIP(ctx)
		default:
			log.Fatalf("Unknown command %q (expected set-balance or sweep-vip)", args[0])
		}
		if err != nil {
			log.Fatalf("%s error: %v", args[0], err)
		}
		return
	}

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error: ", err)
	}
}
