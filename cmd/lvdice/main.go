// Package main provides a CLI for exact dice-sum distributions.
//
//	lvdice table 2d6
//	lvdice ways 1d4+1d6 5
//	lvdice -format png -series cumulative plot 3d6+1d20
//	lvdice -n 10 -seed 7 roll 2d6
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

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvdice/internal/cmd/lvdice"
)

func main() {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := lvdice.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, lvdice.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.PrintDefaults()
			os.Exit(2)
		}
		log.Fatalf("lvdice: %v", err)
	}

	if err := lvdice.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("lvdice: %v", err)
	}
}
