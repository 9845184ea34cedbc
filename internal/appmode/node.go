package appmode

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnendingLoop/srep/internal/config"
	"github.com/UnendingLoop/srep/internal/processor"
	"github.com/UnendingLoop/srep/internal/transport"
	"go.uber.org/zap"
)

// RunNode держит search-node до отмены ctx, затем закрывает сервер в пределах cfg.ShutdownTimeout
func RunNode(ctx context.Context, stop context.CancelFunc, cfg *config.Config, log *zap.Logger) error {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(cfg.Address, processor.Processor{}, log)

	serveErr := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Info("search-node running", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			log.Info("server gracefully stopping...")
		default:
			log.Error("server stopped", zap.Error(err))
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown search-node correctly", zap.String("address", cfg.Address), zap.Error(err))
		return err
	}
	log.Info("search-node server is closed", zap.String("address", cfg.Address))

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}
