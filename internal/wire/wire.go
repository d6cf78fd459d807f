package wire

import (
	"cinema-seating/internal/adaptor"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/broker"
	"cinema-seating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router. checks are probed by
// /health.
func Wiring(repo *repository.Repository, publisher broker.Publisher, checks map[string]HealthCheck, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, checks, logger),
	}
}

func setupRouter(handler *adaptor.Handler, checks map[string]HealthCheck, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Session(logger))
	r.Use(middleware.Logger(logger))

	// Apply routes
	wireSelection(r, handler.Selection)
	wireShowtime(r, handler.Showtime)
	wireRoomState(r, handler.RoomState)
	wirePayment(r, handler.PaymentResult)
	wireHealth(r, checks, logger)

	return r
}
