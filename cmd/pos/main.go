package main

import (
	"context"
	"time"

	"github.com/IRI3V/proyecto/config"
	"github.com/IRI3V/proyecto/internal/app"
	"github.com/IRI3V/proyecto/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	posService := app.New(sigCtx, cfg)

	posService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	posService.Close(ctx)
}
