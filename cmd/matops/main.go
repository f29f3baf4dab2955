// Command matops reads two matrices and prints their sum, difference,
// product and determinants.
//
//	matops [-config matops.yaml] [-v] A.txt B.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/matops/internal/config"
	"github.com/katalvlaran/matops/internal/report"
	"github.com/katalvlaran/matops/matrixio"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default $"+config.EnvConfigPath+" or ./"+config.ConfigFileName+")")
	verbose := flag.Bool("v", false, "log every matrix operation")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] MATRIX1 MATRIX2\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("matops started")

	cfg, path, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return exitUsage
	}
	if path != "" {
		log.Printf("Config loaded: %s", path)
	}
	if *verbose {
		cfg.Log.Verbose = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = report.New(cfg, os.Stdout, log.Default()).Run(ctx, flag.Args())
	switch {
	case err == nil:
		log.Println("matops finished")
		return exitOK
	case errors.Is(err, report.ErrUsage):
		fmt.Fprintln(os.Stderr, "Two matrix files are required.")
		flag.Usage()
		return exitUsage
	case matrixio.IsLoadError(err):
		log.Printf("Failed to read matrices: %v", err)
		fmt.Fprintln(os.Stderr, "Failed to read matrices.")
		return exitFailure
	default:
		log.Printf("matops finished with errors: %v", err)
		return exitFailure
	}
}
