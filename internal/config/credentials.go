package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/keyring"
	"github.com/salmonumbrella/mailcli/internal/keyringutil"
)

// openKeyring is a var so tests can substitute an in-memory ring.
var openKeyring = func() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: AppName,
		// Try native keychain first, fall back to encrypted file if
		// unavailable (e.g. cross-compiled without CGO).
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,      // macOS (requires CGO)
			keyring.WinCredBackend,       // Windows
			keyring.SecretServiceBackend, // Linux (GNOME Keyring/KWallet)
			keyring.FileBackend,          // Fallback: encrypted file
		},
		FileDir:          keyringDir(),
		FilePasswordFunc: keyring.TerminalPrompt,
	})
	if err != nil {
		return nil, err
	}
	return keyringutil.Wrap(ring), nil
}

func keyringDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "keyring")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName, "keyring")
	}
	return "." + AppName + "/keyring"
}

func passwordKey(account string) string {
	return "password:" + normalize(account)
}

func normalize(account string) string {
	return strings.ToLower(strings.TrimSpace(account))
}

// SetPassword stores the account password in the OS keychain.
func SetPassword(account, password string) error {
	if normalize(account) == "" {
		return fmt.Errorf("missing account")
	}
	if password == "" {
		return fmt.Errorf("missing password")
	}

	ring, err := openKeyring()
	if err != nil {
		return err
	}

	return ring.Set(keyring.Item{
		Key:  passwordKey(account),
		Data: []byte(password),
	})
}

// GetPassword retrieves the stored password for an account. A missing
// entry is reported as an error by the keyring backend.
func GetPassword(account string) (string, error) {
	if normalize(account) == "" {
		return "", fmt.Errorf("missing account")
	}

	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(passwordKey(account))
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

// HasPassword reports whether a password is stored for the account.
func HasPassword(account string) bool {
	pw, err := GetPassword(account)
	return err == nil && pw != ""
}

// DeletePassword removes the stored password for an account.
func DeletePassword(account string) error {
	if normalize(account) == "" {
		return fmt.Errorf("missing account")
	}

	ring, err := openKeyring()
	if err != nil {
		return err
	}

	return ring.Remove(passwordKey(account))
}
