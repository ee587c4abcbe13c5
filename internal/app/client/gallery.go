package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/image"
	"murojaat/internal/model"
)

const DefaultGalleryTTL = 10 * time.Minute

// Gallery - изображения записей. Список каждой записи кэшируется отдельно
// и всегда перечитывается с сервера после загрузки или удаления.
type Gallery struct {
	gate
	cache     *cache.Cache
	uploading atomic.Bool
}

func NewGallery(g gate, ttl time.Duration) *Gallery {
	g.log = g.log.With(slog.String("component", "gallery"))
	// без janitor-горутины: просроченные элементы и так не отдаются из Get
	return &Gallery{
		gate:  g,
		cache: cache.New(ttl, 0),
	}
}

// List загружает изображения записи и заменяет её список в кэше
func (g *Gallery) List(ctx context.Context, recordID model.ID) ([]image.Attachment, error) {
	if !g.role.Images {
		return nil, unsupported(OpListImages, g.role.Name)
	}
	sess, err := g.session(OpListImages)
	if err != nil {
		return nil, err
	}

	var list []image.Attachment
	if err := g.call(ctx, OpListImages, sess, http.MethodGet, g.role.RecordImagesPath(recordID.String()), nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []image.Attachment{}
	}

	g.cache.Set(recordID.String(), list, cache.DefaultExpiration)
	g.log.Debug("images loaded", slog.String("record_id", recordID.String()), slog.Int("count", len(list)))
	return cloneImages(list), nil
}

// Cached возвращает последний загруженный список без обращения к серверу
func (g *Gallery) Cached(recordID model.ID) ([]image.Attachment, bool) {
	v, ok := g.cache.Get(recordID.String())
	if !ok {
		return nil, false
	}
	return cloneImages(v.([]image.Attachment)), true
}

// Upload кодирует файл в base64, отправляет и перечитывает список.
// Одновременно выполняется не больше одной загрузки.
func (g *Gallery) Upload(ctx context.Context, recordID model.ID, file []byte, description string) ([]image.Attachment, error) {
	if !g.role.Images {
		return nil, unsupported(OpUploadImage, g.role.Name)
	}
	if !g.uploading.CompareAndSwap(false, true) {
		return nil, &APIError{Op: OpUploadImage, Kind: ErrBusy}
	}
	defer g.uploading.Store(false)

	sess, err := g.session(OpUploadImage)
	if err != nil {
		return nil, err
	}
	if len(file) == 0 {
		return nil, validationFailed(OpUploadImage, errors.New("empty file"))
	}

	req := image.NewUpload(file, description, g.role.ImageDescriptions)
	if err := g.call(ctx, OpUploadImage, sess, http.MethodPost, g.role.RecordImagesPath(recordID.String()), req, nil); err != nil {
		return nil, err
	}

	g.log.Info("image uploaded", slog.String("record_id", recordID.String()), slog.Int("bytes", len(file)))
	return g.refresh(ctx, recordID)
}

// Uploading сообщает, идёт ли сейчас загрузка
func (g *Gallery) Uploading() bool {
	return g.uploading.Load()
}

// Delete удаляет изображение и перечитывает список записи-владельца
func (g *Gallery) Delete(ctx context.Context, imageID, ownerRecordID model.ID) ([]image.Attachment, error) {
	if !g.role.Images {
		return nil, unsupported(OpDeleteImage, g.role.Name)
	}
	sess, err := g.session(OpDeleteImage)
	if err != nil {
		return nil, err
	}

	if err := g.call(ctx, OpDeleteImage, sess, http.MethodDelete, g.role.ImagePath(imageID.String()), nil, nil); err != nil {
		return nil, err
	}

	g.log.Info("image deleted", slog.String("image_id", imageID.String()))
	g.dropCached(ownerRecordID, imageID)
	return g.refresh(ctx, ownerRecordID)
}

// refresh перечитывает список после изменения, которое сервер уже принял.
// Если список не перечитался, вместе с ошибкой отдаётся последний список из кэша.
func (g *Gallery) refresh(ctx context.Context, recordID model.ID) ([]image.Attachment, error) {
	list, err := g.List(ctx, recordID)
	if err == nil {
		return list, nil
	}
	stale, _ := g.Cached(recordID)
	return stale, err
}

// dropCached убирает удалённое сервером изображение из кэша записи
func (g *Gallery) dropCached(recordID, imageID model.ID) {
	v, ok := g.cache.Get(recordID.String())
	if !ok {
		return
	}
	list := v.([]image.Attachment)
	kept := make([]image.Attachment, 0, len(list))
	for _, att := range list {
		if !att.ID.Equal(imageID) {
			kept = append(kept, att)
		}
	}
	g.cache.Set(recordID.String(), kept, cache.DefaultExpiration)
}

// Forget убирает список записи из кэша
func (g *Gallery) Forget(recordID model.ID) {
	g.cache.Delete(recordID.String())
}

func cloneImages(list []image.Attachment) []image.Attachment {
	out := make([]image.Attachment, len(list))
	copy(out, list)
	return out
}
