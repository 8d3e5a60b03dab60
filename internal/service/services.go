package service

import (
	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// Services groups the services of the stub goals API.
type Services struct {
	TokenService TokenService
	GoalService  RemoteGoalService
}

func NewServices(goals *store.MemoryCollection[models.SavingsGoal], cfg config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		TokenService: NewTokenService(cfg, logger),
		GoalService:  NewRemoteGoalService(goals),
	}
}
