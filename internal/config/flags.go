package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-account-id local account identifier
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-base-url key service base URL
//	-auth-token key service bearer token
//	-db-path client vault SQLite path
//	-passphrase vault passphrase
//	-rsa-key-bits identity key modulus size
//	-rotation-interval-hours identity key lifetime in hours
//	-rotation-check-interval rotation scheduler tick (e.g., "1h")
//	-read-grace-period read grace before destruction (e.g., "3s")
//	-preview-ttl plaintext preview cache lifetime (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accountID string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var baseURL string
	var authToken string
	var dbPath string
	var passphrase string
	var rsaKeyBits int
	var rotationIntervalHours uint
	var rotationCheckInterval time.Duration
	var readGracePeriod time.Duration
	var previewTTL time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accountID, "account-id", "", "Local account identifier")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&baseURL, "base-url", "", "Key service base URL")
	flag.StringVar(&authToken, "auth-token", "", "Key service bearer token")
	flag.StringVar(&dbPath, "db-path", "", "Client vault SQLite path")
	flag.StringVar(&passphrase, "passphrase", "", "Vault passphrase")
	flag.IntVar(&rsaKeyBits, "rsa-key-bits", 0, "Identity key modulus size")
	flag.UintVar(&rotationIntervalHours, "rotation-interval-hours", 0, "Identity key lifetime in hours")
	flag.DurationVar(&rotationCheckInterval, "rotation-check-interval", 0, "Rotation scheduler tick (e.g., 1h)")
	flag.DurationVar(&readGracePeriod, "read-grace-period", 0, "Read grace before destruction (e.g., 3s)")
	flag.DurationVar(&previewTTL, "preview-ttl", 0, "Plaintext preview cache lifetime (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccountID:    accountID,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: databaseDSN,
			},
			Client: ClientStorage{
				DBPath: dbPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			AuthToken:      authToken,
			RequestTimeout: requestTimeout,
		},
		Crypto: Crypto{
			RSAKeyBits:            rsaKeyBits,
			Passphrase:            passphrase,
			RotationIntervalHours: uint32(rotationIntervalHours),
			RotationCheckInterval: rotationCheckInterval,
			ReadGracePeriod:       readGracePeriod,
			PreviewTTL:            previewTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
