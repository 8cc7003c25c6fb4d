package usecase

import (
	"context"
	"strconv"

	"github.com/Pings-Lab/pings-lab.github.io/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	endpoint string
	sessions *SessionStore
}

func NewHealthUsecase(endpoint string, sessions *SessionStore) HealthUsecase {
	return &healthUsecase{endpoint: endpoint, sessions: sessions}
}

// Check never fails the probe: a missing endpoint or Redis only degrades
// submissions and rate limiting.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":        "ok",
		"form_endpoint": "configured",
		"redis":         "ok",
		"sessions":      strconv.Itoa(u.sessions.Len()),
	}
	if u.endpoint == "" {
		status["form_endpoint"] = "missing"
	}
	if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unavailable"
	}
	return status
}
