// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies the key
// service's startup invariants.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.AccountID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	// RSA below 2048 bits is not a supported threat-model choice.
	if cfg.Crypto.RSAKeyBits < 2048 {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
