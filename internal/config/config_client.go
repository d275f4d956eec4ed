package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when no source sets a value.
const (
	defaultRSAKeyBits            = 4096
	defaultRotationIntervalHours = 24 * 30 // one month
	defaultRotationCheck         = time.Hour
	defaultReadGracePeriod       = 3 * time.Second
	defaultPreviewTTL            = 5 * time.Minute
	defaultRequestTimeout        = 15 * time.Second
)

// ClientConfig is the client-specific view assembled from [StructuredConfig].
type ClientConfig struct {
	// AccountID identifies the local account.
	AccountID string
	// Adapter contains the key service connection settings.
	Adapter Adapter
	// Storage contains the local vault settings.
	Storage ClientStorage
	// Crypto contains the cryptographic policy knobs.
	Crypto Crypto
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration, applying client defaults for unset
// policy knobs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		AccountID: cfg.App.AccountID,
		Adapter:   cfg.Adapter,
		Storage:   cfg.Storage.Client,
		Crypto:    cfg.Crypto,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Crypto.RSAKeyBits == 0 {
		cfg.Crypto.RSAKeyBits = defaultRSAKeyBits
	}
	if cfg.Crypto.RotationIntervalHours == 0 {
		cfg.Crypto.RotationIntervalHours = defaultRotationIntervalHours
	}
	if cfg.Crypto.RotationCheckInterval == 0 {
		cfg.Crypto.RotationCheckInterval = defaultRotationCheck
	}
	if cfg.Crypto.ReadGracePeriod == 0 {
		cfg.Crypto.ReadGracePeriod = defaultReadGracePeriod
	}
	if cfg.Crypto.PreviewTTL == 0 {
		cfg.Crypto.PreviewTTL = defaultPreviewTTL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}
