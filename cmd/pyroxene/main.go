package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pyroxene.dev/launcher/internal/interfaces/cli"
	"pyroxene.dev/launcher/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := container.Shutdown(context.Background()); err != nil {
			container.GetLogger().Error("error during shutdown", "error", err)
		}
	}()

	cli.Execute(ctx, container.GetCLIContainer())
}
