package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		AccountID: "alice",
		Adapter:   Adapter{BaseURL: "https://keys.example.com"},
		Storage:   ClientStorage{DBPath: "/tmp/vault.db"},
		Crypto:    Crypto{RSAKeyBits: 4096},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"missing account id", func(c *ClientConfig) { c.AccountID = "" }, ErrInvalidAppConfigs},
		{"missing db path", func(c *ClientConfig) { c.Storage.DBPath = "" }, ErrInvalidStorageConfigs},
		{"missing base url", func(c *ClientConfig) { c.Adapter.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"rsa too small", func(c *ClientConfig) { c.Crypto.RSAKeyBits = 1024 }, ErrInvalidCryptoConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultRSAKeyBits, cfg.Crypto.RSAKeyBits)
	assert.Equal(t, uint32(defaultRotationIntervalHours), cfg.Crypto.RotationIntervalHours)
	assert.Equal(t, time.Hour, cfg.Crypto.RotationCheckInterval)
	assert.Equal(t, 3*time.Second, cfg.Crypto.ReadGracePeriod)
	assert.Equal(t, 5*time.Minute, cfg.Crypto.PreviewTTL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validClientConfig()
	cfg.Crypto.RotationIntervalHours = 48
	cfg.Crypto.PreviewTTL = time.Minute
	cfg.applyDefaults()

	require.Equal(t, uint32(48), cfg.Crypto.RotationIntervalHours)
	require.Equal(t, time.Minute, cfg.Crypto.PreviewTTL)
}
