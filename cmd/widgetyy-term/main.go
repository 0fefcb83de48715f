package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := progress.RealClock{}
	root := newRootCmd(clock, func(ctx context.Context, target term.Target) error {
		return term.Run(ctx, target, clock)
	})
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
