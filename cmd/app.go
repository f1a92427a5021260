package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/GrepLite/internal/appmode"
	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/UnendingLoop/GrepLite/internal/parser"
)

func main() {
	// инициализировать параметры запуска - режим и прочее:
	appParam, err := parser.InitAppMode(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch GrepLite: %q", err.Error())
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeSearch:
		appmode.RunSearch(ctx, stop, appParam)
	case model.ModeServe:
		appmode.RunServe(ctx, stop, appParam)
	default:
		log.Printf("Failed to launch: unknown mode %q specified.\nExiting the app...", appParam.Mode)
		os.Exit(1)
	}
}
