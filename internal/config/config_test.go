package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsEmptyServerAddr(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Addr: ":8080", ReadTimeout: 10, WriteTimeout: 10},
		Transfers: TransfersConfig{Provider: "none"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Addr: ":8080", ReadTimeout: 10, WriteTimeout: 10},
		Transfers: TransfersConfig{Provider: "teleport"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresWalkingParamsForCrowfly(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Addr: ":8080", ReadTimeout: 10, WriteTimeout: 10},
		Transfers: TransfersConfig{Provider: "crowfly"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Transfers.WalkingSpeedKmh = 5
	cfg.Transfers.MaxWalkingSeconds = 900
	assert.NoError(t, cfg.Validate())
}
