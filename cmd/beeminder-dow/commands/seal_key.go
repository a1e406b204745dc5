package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"beeminder-dow/internal/store"
)

// sealKeyCmd encrypts the plain-text credentials file in place.
func sealKeyCmd(inv *invocation) *cobra.Command {
	return &cobra.Command{
		Use:   "seal-key",
		Short: "Encrypt the api key file with a passphrase",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if inv.cfg.Passphrase == "" {
				return usageError{errors.New("passphrase required (-p)")}
			}
			path, err := store.ExpandHome(inv.cfg.APIKeyFile)
			if err != nil {
				return err
			}
			if err := store.SealAPIKey(path, inv.cfg.Passphrase); err != nil {
				return fmt.Errorf("sealing %s: %w", path, err)
			}
			inv.logger.Debug().Str("file", path).Msg("credentials sealed")
			fmt.Fprintf(cmd.OutOrStdout(), "Sealed %s\n", path)
			return nil
		},
	}
}
