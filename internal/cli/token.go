package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newTokenCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API client token signed with AUTH_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := v.BindEnv("secret", "AUTH_SECRET"); err != nil {
				return err
			}

			secret := v.GetString("secret")
			if secret == "" {
				return errors.New("AUTH_SECRET is not set")
			}

			token, err := crypto.GenerateToken(v.GetString("client"), secret, v.GetDuration("ttl"))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("client", "", "client name recorded in the audit log")
	cmd.Flags().Duration("ttl", 30*24*time.Hour, "token lifetime")
	return cmd
}
