package main

import (
	"fmt"
	"time"

	"yokeair/internal/api/handler/v1handler"
	"yokeair/internal/config"
	"yokeair/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// signToken issues an RS256 bearer token for the given user and role.
func signToken(privateKeyPEM string, subject string, role domain.Role, ttl time.Duration, now time.Time) (string, error) {
	if _, err := uuid.Parse(subject); err != nil {
		return "", fmt.Errorf("subject must be a user id: %w", err)
	}
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, v1handler.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand prints a token for local testing, signed with the configured key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID and role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := signToken(cfg.JWT.PrivateKey, subject, domain.Role(role), ttl, time.Now())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "JWT subject (user ID)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleClient), "user role (client or broker)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
