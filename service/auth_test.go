package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/util"
)

func newAuthFixture() (AuthService, *fakeTrainerRepo) {
	repo := newFakeTrainerRepo()
	cfg := &entity.Config{JWTSecretKey: "test-secret"}
	return NewAuthService(repo, cfg), repo
}

func TestRegisterStoresDigestNotPassword(t *testing.T) {
	svc, repo := newAuthFixture()

	trainer, err := svc.Register(context.Background(), "t1@example.com", "T1", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, trainer.ID)
	require.Equal(t, "t1@example.com", trainer.Email)

	stored := repo.trainers[trainer.ID]
	require.NotEqual(t, "secret123", stored.Password)
	require.True(t, util.CheckPasswordHash("secret123", stored.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "t1@example.com", "T1", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "t1@example.com", "Someone Else", "other-pass")
	require.ErrorIs(t, err, ErrConflict)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "t1@example.com", "T1", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "t1@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginAndResolveRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "t1@example.com", "T1", "secret123")
	require.NoError(t, err)

	trainer, token, err := svc.Login(ctx, "t1@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, trainer.ID)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, resolved.ID)
}

func TestResolveMalformedToken(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Resolve(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveVanishedSubject(t *testing.T) {
	svc, repo := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "t1@example.com", "T1", "secret123")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "t1@example.com", "secret123")
	require.NoError(t, err)

	// Trainer deleted after the token was issued
	delete(repo.trainers, registered.ID)

	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrUnauthorized)
}
