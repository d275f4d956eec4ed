package config

import "errors"

var (
	ErrInvalidAppConfigs     = errors.New("invalid app configs provided")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs provided")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs provided")
	ErrInvalidCryptoConfigs  = errors.New("invalid crypto configs provided")
)
