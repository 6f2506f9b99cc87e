package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tiwariParth/go-todo-cli/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.NewTodoApp().Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
