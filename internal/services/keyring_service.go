package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName    = "athena"
	openaiProvider = "openai"
)

// KeyringService keeps an opt-in copy of the OpenAI key in the OS keychain.
// It never replaces the env mirror: the python companion only reads the
// plaintext file, so the keychain copy is purely for the user's benefit.
type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreAPIKey(apiKey string) error {
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(serviceName, openaiProvider, apiKey)
}

func (s *KeyringService) GetAPIKey() (string, error) {
	return keyring.Get(serviceName, openaiProvider)
}

func (s *KeyringService) DeleteAPIKey() error {
	return keyring.Delete(serviceName, openaiProvider)
}
