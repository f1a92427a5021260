package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/UnendingLoop/GrepLite/internal/processor"
	"github.com/UnendingLoop/GrepLite/internal/transport"
)

func RunServe(ctx context.Context, stop context.CancelFunc, ai *model.AppInit) {
	// получить экземпляр сервера
	srv := transport.NewSearchServer(ai.Address, processor.Processor{})

	// запуск сервера
	go func() {
		log.Printf("Search server running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server %q correctly: %q", ai.Address, err.Error())
	} else {
		log.Printf("Search server %q is closed.", ai.Address)
	}
}
