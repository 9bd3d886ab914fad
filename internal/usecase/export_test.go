package usecase

import (
	"context"
	"time"
)

func SetSleepForTest(s *ScrapeOrchestratorService, sleep func(ctx context.Context, d time.Duration) error) {
	s.sleep = sleep
}
