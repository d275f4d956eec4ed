package service

import (
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/custodian"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/ephemeral"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/rotation"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
)

// ClientServices aggregates the client-side services of the crypto
// subsystem and wires their shared dependencies: one custodian over the
// local vault, one ephemeral policy whose destruction callback scrubs the
// preview cache, and one rotation job.
type ClientServices struct {
	SessionService   SessionService
	MessengerService MessengerService
}

func NewClientServices(storages *store.ClientStorages, keyService adapter.KeyServiceAdapter, cfg config.ClientConfig, log *logger.Logger) (*ClientServices, error) {
	keeper, err := custodian.NewKeyCustodian(storages.KeyVault, crypto.NewKeyChainService(), cfg.Crypto.RSAKeyBits, log)
	if err != nil {
		return nil, err
	}

	cache := ephemeral.NewPreviewCache(cfg.Crypto.PreviewTTL)
	policy := ephemeral.NewPolicy(func(messageID string) error {
		cache.Scrub(messageID)
		return nil
	}, cfg.Crypto.ReadGracePeriod, log)

	scheduler := rotation.NewScheduler(keyService, keeper, storages.Rotation,
		cfg.AccountID, cfg.Crypto.Passphrase, cfg.Crypto.RotationIntervalHours, log)
	job := rotation.NewJob(scheduler, storages.Rotation,
		cfg.Crypto.RotationCheckInterval, cfg.Crypto.RotationIntervalHours, log)

	return &ClientServices{
		SessionService:   NewSessionService(keeper, keyService, job, storages.Rotation, policy, cache, cfg, log),
		MessengerService: NewMessengerService(crypto.NewHybridCipherService(), keeper, keyService, policy, cache, validators.NewEnvelopeValidator(), cfg.Crypto.Passphrase, log),
	}, nil
}
