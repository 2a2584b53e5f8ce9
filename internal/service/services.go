package service

import (
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/store"
	"github.com/MKhiriev/go-secrets-vault/internal/validators"
)

type Services struct {
	KeepSecretsService KeepSecretsService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		KeepSecretsService: NewKeepSecretsService(storages, validators.NewSecretValidator(), logger),
	}
}
