package image

import (
	"encoding/base64"
	"strings"

	"murojaat/internal/model"
)

const dataURLPrefix = "data:image/jpeg;base64,"

// Attachment - изображение, прикреплённое к записи. ImageData хранится в base64 без MIME-префикса.
type Attachment struct {
	ID          model.ID `json:"id" yaml:"id"`
	ImageData   string   `json:"image_data" yaml:"image_data"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// DataURL возвращает изображение в виде data URL для встраивания в страницу
func (a Attachment) DataURL() string {
	if strings.HasPrefix(a.ImageData, "data:") {
		return a.ImageData
	}
	return dataURLPrefix + a.ImageData
}

// Bytes декодирует содержимое изображения
func (a Attachment) Bytes() ([]byte, error) {
	data := a.ImageData
	if i := strings.Index(data, ";base64,"); strings.HasPrefix(data, "data:") && i >= 0 {
		data = data[i+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(data)
}

// UploadRequest - тело POST-запроса загрузки
type UploadRequest struct {
	ImageData   string `json:"imageData" yaml:"imageData"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewUpload кодирует байты файла. Описание передаётся только если роль его поддерживает.
func NewUpload(file []byte, description string, withDescription bool) UploadRequest {
	req := UploadRequest{ImageData: base64.StdEncoding.EncodeToString(file)}
	if withDescription {
		req.Description = strings.TrimSpace(description)
	}
	return req
}
