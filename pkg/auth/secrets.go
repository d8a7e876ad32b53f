// Package auth resolves secrets supplied by the hosting environment.
package auth

import (
	"fmt"
	"os"
)

// SecretCaminoAPIKey is the secret name holding the Camino API key.
const SecretCaminoAPIKey = "CAMINO_API_KEY"

// SecretProvider resolves a named secret at call time. Implementations
// must not cache resolved values on behalf of callers.
type SecretProvider interface {
	GetSecret(name string) (string, error)
}

// EnvProvider resolves secrets from the process environment.
type EnvProvider struct{}

// GetSecret returns the named secret from the environment.
func (EnvProvider) GetSecret(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("secret %s is not set", name)
	}
	return value, nil
}

// Default is the provider used by the tool handlers.
var Default SecretProvider = EnvProvider{}

// GetSecret resolves a secret through the default provider.
func GetSecret(name string) (string, error) {
	return Default.GetSecret(name)
}
