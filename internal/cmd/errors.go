package cmd

import (
	"errors"

	"github.com/salmonumbrella/mailcli/internal/config"
	cerrors "github.com/salmonumbrella/mailcli/internal/errors"
	"github.com/salmonumbrella/mailcli/internal/keyringutil"
	"github.com/salmonumbrella/mailcli/internal/mail"
)

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	var timeoutErr *keyringutil.TimeoutError
	switch {
	case errors.Is(err, config.ErrMissingKeys):
		return cerrors.WithSuggestion(err, cerrors.SuggestionConfigFile)
	case errors.As(err, &timeoutErr):
		return cerrors.WithSuggestion(err, cerrors.SuggestionUnlockKeyring)
	case mail.IsAuthError(err):
		return cerrors.WithSuggestion(err, cerrors.SuggestionAppPassword)
	case mail.IsTimeout(err):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckNet)
	case mail.IsConnectError(err):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckServer)
	case mail.IsAddressError(err):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckEmail)
	}

	return err
}
