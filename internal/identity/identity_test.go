package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/storage"
	storagemock "github.com/feelspace/feelsync/internal/storage/mock"
)

var (
	ctx     = context.Background()
	errTest = errors.New("test")
)

func setup(t *testing.T) (*storagemock.MockStorage, *Provider) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := storagemock.NewMockStorage(ctrl)

	return s, New(s)
}

func TestProvider_DeviceID_Generates(t *testing.T) {
	s, p := setup(t)

	var persisted string

	gomock.InOrder(
		s.EXPECT().GetMeta(ctx, storage.DeviceIDKey).Return("", storage.ErrNotFound),
		s.EXPECT().SetMeta(ctx, storage.DeviceIDKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, v string) error {
				persisted = v
				return nil
			}),
	)

	id, err := p.DeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, persisted, id)

	// cached, storage is not touched again
	again, err := p.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestProvider_DeviceID_Existing(t *testing.T) {
	s, p := setup(t)

	s.EXPECT().GetMeta(ctx, storage.DeviceIDKey).Return("device-1", nil)

	id, err := p.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-1", id)
}

func TestProvider_DeviceID_StorageFailed(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		s, p := setup(t)

		s.EXPECT().GetMeta(ctx, storage.DeviceIDKey).Return("", errTest)

		_, err := p.DeviceID(ctx)
		require.True(t, errors.Is(err, ErrUnavailable))
	})

	t.Run("write", func(t *testing.T) {
		s, p := setup(t)

		s.EXPECT().GetMeta(ctx, storage.DeviceIDKey).Return("", storage.ErrNotFound)
		s.EXPECT().SetMeta(ctx, storage.DeviceIDKey, gomock.Any()).Return(errTest)

		_, err := p.DeviceID(ctx)
		require.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestProvider_Handle(t *testing.T) {
	s, p := setup(t)

	s.EXPECT().GetMeta(ctx, storage.HandleKey).Return("NightOwl", nil)

	h, err := p.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NightOwl", h)

	// cached
	h, err = p.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NightOwl", h)
}

func TestProvider_Handle_Default(t *testing.T) {
	s, p := setup(t)

	// the default is not cached so a later SetHandle wins
	s.EXPECT().GetMeta(ctx, storage.HandleKey).Return("", storage.ErrNotFound).Times(2)

	h, err := p.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultHandle, h)

	h, err = p.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultHandle, h)
}

func TestProvider_SetHandle(t *testing.T) {
	s, p := setup(t)

	s.EXPECT().SetMeta(ctx, storage.HandleKey, "NightOwl").Return(nil)

	require.NoError(t, p.SetHandle(ctx, "NightOwl"))

	h, err := p.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NightOwl", h)
}
