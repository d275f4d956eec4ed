package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AccountID    string `env:"ACCOUNT_ID" json:"account_id"`
		TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`
		TokenIssuer  string `env:"TOKEN_ISSUER" json:"token_issuer"`
		Version      string `env:"VERSION" json:"version"`
	} `envPrefix:"APP_" json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `env:"DATABASE_URI" json:"dsn"`
		} `envPrefix:"DB_" json:"db,omitempty"`

		Client struct {
			DBPath string `env:"DB_PATH" json:"db_path"`
		} `envPrefix:"CLIENT_" json:"client,omitempty"`
	} `envPrefix:"STORAGE_" json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `env:"ADDRESS" json:"http_address"`
		RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
	} `envPrefix:"SERVER_" json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `env:"BASE_URL" json:"base_url"`
		AuthToken      string   `env:"AUTH_TOKEN" json:"auth_token"`
		RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
	} `envPrefix:"ADAPTER_" json:"adapter,omitempty"`

	Crypto struct {
		RSAKeyBits            int      `env:"RSA_KEY_BITS" json:"rsa_key_bits"`
		Passphrase            string   `env:"PASSPHRASE" json:"passphrase"`
		RotationIntervalHours uint32   `env:"ROTATION_INTERVAL_HOURS" json:"rotation_interval_hours"`
		RotationCheckInterval Duration `env:"ROTATION_CHECK_INTERVAL" json:"rotation_check_interval"`
		ReadGracePeriod       Duration `env:"READ_GRACE_PERIOD" json:"read_grace_period"`
		PreviewTTL            Duration `env:"PREVIEW_TTL" json:"preview_ttl"`
	} `envPrefix:"CRYPTO_" json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccountID:    jsonCfg.App.AccountID,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Client: ClientStorage{
				DBPath: jsonCfg.Storage.Client.DBPath,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			AuthToken:      jsonCfg.Adapter.AuthToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Crypto: Crypto{
			RSAKeyBits:            jsonCfg.Crypto.RSAKeyBits,
			Passphrase:            jsonCfg.Crypto.Passphrase,
			RotationIntervalHours: jsonCfg.Crypto.RotationIntervalHours,
			RotationCheckInterval: time.Duration(jsonCfg.Crypto.RotationCheckInterval),
			ReadGracePeriod:       time.Duration(jsonCfg.Crypto.ReadGracePeriod),
			PreviewTTL:            time.Duration(jsonCfg.Crypto.PreviewTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
