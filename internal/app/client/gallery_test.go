package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murojaat/internal/domain/role"
	"murojaat/internal/model"
)

func TestGallery_UploadListDelete(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")

	list, err := env.app.Images.List(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = env.app.Images.Upload(ctx, rec.ID, []byte("jpeg bytes"), "  pasport nusxasi ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pasport nusxasi", list[0].Description)
	data, err := list[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
	assert.False(t, env.app.Images.Uploading())

	cached, ok := env.app.Images.Cached(rec.ID)
	require.True(t, ok)
	assert.Equal(t, list, cached)

	list, err = env.app.Images.Delete(ctx, list[0].ID, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	env.app.Images.Forget(rec.ID)
	_, ok = env.app.Images.Cached(rec.ID)
	assert.False(t, ok)
}

func TestGallery_EmployeeUploadDropsDescription(t *testing.T) {
	env := newTestEnv(t, role.Employee)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", empName)

	list, err := env.app.Images.Upload(ctx, rec.ID, []byte{0xff, 0xd8}, "ignored")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Description)
}

func TestGallery_RejectsEmptyFileAndConcurrentUpload(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")

	_, err := env.app.Images.Upload(ctx, rec.ID, nil, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.False(t, env.app.Images.Uploading())

	env.app.Images.uploading.Store(true)
	_, err = env.app.Images.Upload(ctx, rec.ID, []byte("x"), "")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Empty(t, env.server.Store().Images(rec.ID))
	env.app.Images.uploading.Store(false)
}

func TestGallery_FailedUploadKeepsCache(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")
	env.server.Store().AddImage(rec.ID, "QUJD", "")

	before, err := env.app.Images.List(ctx, rec.ID)
	require.NoError(t, err)

	env.server.FailNext(http.StatusRequestEntityTooLarge, "Rasm juda katta")
	_, err = env.app.Images.Upload(ctx, rec.ID, []byte("big"), "")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Rasm juda katta", Message(err))
	assert.False(t, env.app.Images.Uploading())

	cached, ok := env.app.Images.Cached(rec.ID)
	require.True(t, ok)
	assert.Equal(t, before, cached)
}

func TestGallery_UploadReturnsCachedListWhenRefreshFails(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")
	env.server.Store().AddImage(rec.ID, "QUJD", "")

	before, err := env.app.Images.List(ctx, rec.ID)
	require.NoError(t, err)

	env.server.PassNext()
	env.server.FailNext(http.StatusInternalServerError, "Server xatosi")
	list, err := env.app.Images.Upload(ctx, rec.ID, []byte("new"), "")
	require.Error(t, err)
	assert.Equal(t, "Server xatosi", Message(err))
	assert.Equal(t, before, list)
	assert.Len(t, env.server.Store().Images(rec.ID), 2)
}

func TestGallery_DeleteDropsImageFromCacheWhenRefreshFails(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")
	first := env.server.Store().AddImage(rec.ID, "QUJD", "")
	second := env.server.Store().AddImage(rec.ID, "REVG", "")

	_, err := env.app.Images.List(ctx, rec.ID)
	require.NoError(t, err)

	env.server.PassNext()
	env.server.FailNext(http.StatusInternalServerError, "Server xatosi")
	list, err := env.app.Images.Delete(ctx, first.ID, rec.ID)
	require.Error(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	cached, ok := env.app.Images.Cached(rec.ID)
	require.True(t, ok)
	assert.Equal(t, list, cached)
}

func TestGallery_ExpiredSession(t *testing.T) {
	env := newTestEnv(t, role.Admin)
	ctx := context.Background()
	env.login(t)
	rec := env.seedRecord("Ali", "Karimov")

	env.server.FailNext(http.StatusUnauthorized, "Unauthorized")
	_, err := env.app.Images.List(ctx, rec.ID)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = env.app.Images.Delete(ctx, model.NewID("1"), rec.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGallery_LegacyRoleHasNoImages(t *testing.T) {
	env := newTestEnv(t, role.Legacy)

	_, err := env.app.Images.List(context.Background(), model.NewID("1"))
	assert.ErrorIs(t, err, ErrUnsupported)
}
