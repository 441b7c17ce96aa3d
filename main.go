package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/diaita/app/providers"
	"github.com/km-arc/diaita/framework/app"
	"github.com/km-arc/diaita/framework/container"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "diaita:", err)
		os.Exit(1)
	}
}

func run() error {
	application, err := app.New() // loads .env automatically
	if err != nil {
		return err
	}
	if err := application.Config().Validate(); err != nil {
		return err
	}

	// ── Application providers ────────────────────────────────────────────────

	for _, p := range []container.ServiceProvider{
		&providers.DatabaseServiceProvider{},
		&providers.ClientServiceProvider{},
		&providers.AppServiceProvider{},
		&providers.RouteServiceProvider{},
	} {
		if err := application.Register(p); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
