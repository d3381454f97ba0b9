package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServiceAccount holds essential fields from the Firebase JSON key,
// used for signing storage download URLs.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadServiceAccount reads the service account JSON key from disk.
func LoadServiceAccount(path string) (*ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key: %w", err)
	}
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return &sa, nil
}
