package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Required. The bare tenant subdomain of your Egnyte account:
# "acme" for https://acme.egnyte.com
domain = "acme"

# Required. OAuth bearer token for the public API. Tokens are issued per
# application through the Egnyte developer console.
token = "MYEGNYTETOKEN"

# Optional. Overrides the domain-derived API root. Mostly useful for
# proxies and testing.
# base_url = "https://acme.egnyte.com/pubapi/v1"

# Optional log level, default "info"
loglevel = "info"

# Optional request timeout in seconds, default 30
timeout_seconds = 30

# Optional number of attempts for throttled/failed requests, default 3
max_retries = 3
`

// GenerateConfig writes a commented configuration template to configPath,
// backing up any existing file first.
func GenerateConfig(configPath string) error {
	fmt.Printf("Generating config %s\n", configPath)

	// Check if config file already exists and back it up
	if _, err := os.Stat(configPath); err == nil {
		backupPath := configPath + ".bak"
		fmt.Printf("Backing up config %s\n", configPath)
		if err := os.Rename(configPath, backupPath); err != nil {
			return fmt.Errorf("failed to backup config: %w", err)
		}
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config file
	fmt.Printf("Writing %s\n", configPath)
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
