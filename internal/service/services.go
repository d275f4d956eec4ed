package service

import (
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/crypto"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/validators"
)

type Services struct {
	AuthService      AuthService
	KeyIssueService  KeyIssueService
	DirectoryService DirectoryService
	PreviewService   PreviewService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		KeyIssueService:  NewKeyIssueService(cfg.Crypto.RSAKeyBits, logger),
		DirectoryService: NewDirectoryService(storages.Directory, logger),
		PreviewService:   NewPreviewService(crypto.NewHybridCipherService(), validators.NewEnvelopeValidator(), logger),
	}
}
