package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandstay/hotel-api/internal/core/service"
	"github.com/grandstay/hotel-api/internal/infrastructure/config"
	mongodb "github.com/grandstay/hotel-api/internal/infrastructure/db/mongo"
	"github.com/grandstay/hotel-api/internal/infrastructure/security"
	"github.com/grandstay/hotel-api/pkg/logger"
)

// NewCredentialCmd creates the credential subcommand group.
func NewCredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage login credentials",
	}
	cmd.AddCommand(newCredentialAddCmd())
	return cmd
}

func newCredentialAddCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a username and bcrypt-hashed password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "hotel-cli"})

			client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()

			store := mongodb.NewStore(db)
			if err := store.Credentials.EnsureIndexes(ctx); err != nil {
				return err
			}

			tokens, err := security.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
			if err != nil {
				return err
			}
			auth := service.NewAuthService(store.Credentials, security.NewBcryptHasher(0), tokens, nil, logger.Get())
			if err := auth.AddCredential(ctx, username, password); err != nil {
				return fmt.Errorf("add credential %q: %w", username, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "credential %q stored\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "plaintext password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewHashPasswordCmd creates the hash-password subcommand.
func NewHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("password must not be empty")
			}
			hash, err := security.NewBcryptHasher(0).Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
