package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/infrastructure/storage"
)

func TestUserService_SetStateAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 1, 10, entity.StateAwaitingPhoto)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_GetCreatesUser(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Get(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
	require.Equal(t, int64(2), user.ID)
}
