package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

const tipRotationInterval = 24 * time.Hour

// TipService serves the tip of the day and rotates it daily in the
// background. NewTip always switches away from the currently shown tip.
type TipService struct {
	mu      sync.RWMutex
	tips    []models.Tip
	current int
}

func NewTipService() *TipService {
	return &TipService{tips: models.DefaultDailyTips()}
}

func (service *TipService) Current() models.Tip {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return service.tips[service.current]
}

// NewTip picks a random tip different from the current one and makes it
// current.
func (service *TipService) NewTip() models.Tip {
	service.mu.Lock()
	defer service.mu.Unlock()

	if len(service.tips) > 1 {
		next := rand.Intn(len(service.tips) - 1)
		if next >= service.current {
			next++
		}
		service.current = next
	}
	return service.tips[service.current]
}

// Start rotates the tip of the day every 24 hours until the context is
// cancelled.
func (service *TipService) Start(ctx context.Context) {
	ticker := time.NewTicker(tipRotationInterval)
	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.rotate()
			}
		}
	}()
}

func (service *TipService) rotate() {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.current = rand.Intn(len(service.tips))
}
