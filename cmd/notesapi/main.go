package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/codecraf8/notesapi/pkg/notesapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := notesapi.Main(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
