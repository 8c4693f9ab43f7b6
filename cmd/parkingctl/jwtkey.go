package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"

	"github.com/smart-parking/console/config"
	secrets "github.com/smart-parking/console/pkg/secrets/vault"
)

const generatedKeyBytes = 32

var (
	ErrNoKeyValue      = errors.New("pass --value or --generate")
	ErrVaultNotEnabled = errors.New("secret store address and token are not configured")
)

type jwtKeyOptions struct {
	value    string
	generate bool
	name     string
	secrets  config.Secrets
}

func newStoreJWTKeyCmd(flags *globalFlags) *cobra.Command {
	opts := &jwtKeyOptions{}

	cmd := &cobra.Command{
		Use:   "store-jwt-key",
		Short: "Write the JWT signing key to the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value := opts.value

			if value == "" && opts.generate {
				buf := make([]byte, generatedKeyBytes)
				if _, err := rand.Read(buf); err != nil {
					return err
				}

				value = hex.EncodeToString(buf)
			}

			if value == "" {
				return ErrNoKeyValue
			}

			sc, name, err := opts.resolve(flags)
			if err != nil {
				return err
			}

			store, err := secrets.NewClient(&sc)
			if err != nil {
				return err
			}

			if err := store.SetKeyValue(cmd.Context(), name, value); err != nil {
				return err
			}

			green.Fprintf(cmd.OutOrStdout(), "stored %q at %s\n", name, pathOrDefault(sc.Path))

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.value, "value", "", "signing key to store")
	cmd.Flags().BoolVar(&opts.generate, "generate", false, "store a random key when --value is empty")
	cmd.Flags().StringVar(&opts.name, "name", "", "secret key name, defaults to auth.jwtKeySecretName")
	cmd.Flags().StringVar(&opts.secrets.Address, "vault-addr", "", "vault address, overrides the config file")
	cmd.Flags().StringVar(&opts.secrets.Token, "vault-token", "", "vault token, overrides the config file")
	cmd.Flags().StringVar(&opts.secrets.Path, "path", "", "KV v2 path, overrides the config file")

	return cmd
}

// resolve fills whatever the flags left empty from the config file.
func (o *jwtKeyOptions) resolve(flags *globalFlags) (config.Secrets, string, error) {
	sc, name := o.secrets, o.name

	if !secrets.Enabled(sc) || name == "" {
		cfg, err := flags.loadConfig()
		if err != nil {
			return sc, name, err
		}

		if sc.Address == "" {
			sc.Address = cfg.Secrets.Address
		}

		if sc.Token == "" {
			sc.Token = cfg.Secrets.Token
		}

		if sc.Path == "" {
			sc.Path = cfg.Secrets.Path
		}

		if name == "" {
			name = cfg.JWTKeySecretName
		}
	}

	if !secrets.Enabled(sc) {
		return sc, name, ErrVaultNotEnabled
	}

	return sc, name, nil
}

func pathOrDefault(p string) string {
	if p == "" {
		return secrets.DefaultSecretPath
	}

	return p
}
