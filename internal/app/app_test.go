package app

import (
	"sync"
	"testing"

	"gamification_backend/internal/config"
	"gamification_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func configWithSecret(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	return cfg
}

func TestReloadConfigConcurrentReads(t *testing.T) {
	logger.Log = zap.NewNop()

	a := &App{Config: configWithSecret("initial")}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				a.ReloadConfig(configWithSecret("rotated"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = a.CurrentConfig().JWT.Secret
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "rotated", a.CurrentConfig().JWT.Secret)
}

func TestReloadConfigSwapsPointer(t *testing.T) {
	logger.Log = zap.NewNop()

	original := configWithSecret("before")
	a := &App{Config: original}

	a.ReloadConfig(configWithSecret("after"))

	assert.Equal(t, "after", a.CurrentConfig().JWT.Secret)
	// the old snapshot is left untouched for handlers still holding it
	assert.Equal(t, "before", original.JWT.Secret)
}
