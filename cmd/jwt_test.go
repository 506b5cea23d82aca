package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"yokeair/internal/api/handler/v1handler"
	"yokeair/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testKeys(t *testing.T) (string, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})),
		string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
}

func TestSignToken(t *testing.T) {
	privPEM, pubPEM := testKeys(t)
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	uid := uuid.New()
	token, err := signToken(privPEM, uid.String(), domain.RoleBroker, time.Hour, time.Now())
	require.NoError(t, err)

	ctx, err := sh.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, domain.Actor{ID: domain.UserID(uid), Role: domain.RoleBroker}, v1handler.GetActorFromContext(ctx))
}

func TestSignToken_Invalid(t *testing.T) {
	privPEM, _ := testKeys(t)

	_, err := signToken(privPEM, "bob", domain.RoleClient, time.Hour, time.Now())
	require.ErrorContains(t, err, "subject must be a user id")

	_, err = signToken(privPEM, uuid.NewString(), "admin", time.Hour, time.Now())
	require.ErrorContains(t, err, `unknown role "admin"`)

	_, err = signToken("garbage", uuid.NewString(), domain.RoleClient, time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse RSA private key")
}
