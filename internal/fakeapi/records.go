package fakeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"murojaat/internal/domain/image"
	"murojaat/internal/domain/record"
	"murojaat/internal/domain/role"
	"murojaat/internal/model"
)

type idInput struct {
	ID string `path:"id"`
}

type recordListOutput struct {
	Body []record.Record
}

type recordCreateInput struct {
	Body record.Draft
}

type recordUpdateInput struct {
	ID   string `path:"id"`
	Body record.Record
}

type recordOutput struct {
	Body record.Record
}

type messageOutput struct {
	Body messageResponse
}

type imageListOutput struct {
	Body []image.Attachment
}

type imageUploadInput struct {
	ID   string `path:"id"`
	Body image.UploadRequest
}

type imageOutput struct {
	Body image.Attachment
}

func (s *Server) recordRoutes(api huma.API, d role.Descriptor, mws huma.Middlewares) {
	prefix := string(d.Name) + "-"
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(api, huma.Operation{
		OperationID: prefix + "records-list",
		Method:      http.MethodGet,
		Path:        d.RecordsPath,
		Summary:     "Список записей",
		Tags:        []string{"records"},
		Security:    security,
		Middlewares: mws,
	}, s.listRecords)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "records-create",
		Method:      http.MethodPost,
		Path:        d.RecordsPath,
		Summary:     "Создать запись",
		Tags:        []string{"records"},
		Security:    security,
		Middlewares: mws,
	}, s.createRecord)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "records-update",
		Method:      http.MethodPut,
		Path:        d.RecordsPath + "/{id}",
		Summary:     "Обновить запись",
		Tags:        []string{"records"},
		Security:    security,
		Middlewares: mws,
	}, s.updateRecord)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "records-delete",
		Method:      http.MethodDelete,
		Path:        d.RecordsPath + "/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"records"},
		Security:    security,
		Middlewares: mws,
	}, s.deleteRecord)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "images-list",
		Method:      http.MethodGet,
		Path:        d.RecordsPath + "/{id}/images",
		Summary:     "Изображения записи",
		Tags:        []string{"images"},
		Security:    security,
		Middlewares: mws,
	}, s.listImages)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "images-upload",
		Method:      http.MethodPost,
		Path:        d.RecordsPath + "/{id}/images",
		Summary:     "Загрузить изображение",
		Tags:        []string{"images"},
		Security:    security,
		Middlewares: mws,
	}, s.uploadImage)

	huma.Register(api, huma.Operation{
		OperationID: prefix + "images-delete",
		Method:      http.MethodDelete,
		Path:        d.ImagesPath + "/{id}",
		Summary:     "Удалить изображение",
		Tags:        []string{"images"},
		Security:    security,
		Middlewares: mws,
	}, s.deleteImage)
}

// scope - сотрудник видит только закреплённые за ним записи
func scope(ctx context.Context) (string, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return "", errorf(http.StatusUnauthorized, "Unauthorized")
	}
	if claims.Role == string(role.Employee) {
		return claims.Name, nil
	}
	return "", nil
}

func (s *Server) ownedRecord(ctx context.Context, id model.ID) (record.Record, error) {
	assignee, err := scope(ctx)
	if err != nil {
		return record.Record{}, err
	}
	rec, ok := s.store.GetRecord(id)
	if !ok || (assignee != "" && rec.Assignee != assignee) {
		return record.Record{}, mapStoreError(ErrNotFound)
	}
	return rec, nil
}

func (s *Server) listRecords(ctx context.Context, _ *struct{}) (*recordListOutput, error) {
	assignee, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	return &recordListOutput{Body: s.store.Records(assignee)}, nil
}

func (s *Server) createRecord(ctx context.Context, input *recordCreateInput) (*recordOutput, error) {
	if err := s.records.ValidateDraft(ctx, input.Body); err != nil {
		return nil, validationError(err)
	}
	return &recordOutput{Body: s.store.CreateRecord(input.Body)}, nil
}

func (s *Server) updateRecord(ctx context.Context, input *recordUpdateInput) (*recordOutput, error) {
	id := pathID(input.ID)
	if _, err := s.ownedRecord(ctx, id); err != nil {
		return nil, err
	}
	if err := s.records.ValidateRecord(ctx, input.Body); err != nil {
		return nil, validationError(err)
	}

	updated, err := s.store.UpdateRecord(id, input.Body)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &recordOutput{Body: updated}, nil
}

func (s *Server) deleteRecord(ctx context.Context, input *idInput) (*messageOutput, error) {
	id := pathID(input.ID)
	if _, err := s.ownedRecord(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.DeleteRecord(id); err != nil {
		return nil, mapStoreError(err)
	}
	return &messageOutput{Body: messageResponse{Message: "Record deleted"}}, nil
}

func (s *Server) listImages(ctx context.Context, input *idInput) (*imageListOutput, error) {
	id := pathID(input.ID)
	if _, err := s.ownedRecord(ctx, id); err != nil {
		return nil, err
	}
	return &imageListOutput{Body: s.store.Images(id)}, nil
}

func (s *Server) uploadImage(ctx context.Context, input *imageUploadInput) (*imageOutput, error) {
	id := pathID(input.ID)
	if _, err := s.ownedRecord(ctx, id); err != nil {
		return nil, err
	}
	if input.Body.ImageData == "" {
		return nil, errorf(http.StatusBadRequest, "Rasm ma'lumotlari bo'sh")
	}

	description := input.Body.Description
	if assignee, _ := scope(ctx); assignee != "" {
		description = ""
	}
	return &imageOutput{Body: s.store.AddImage(id, input.Body.ImageData, description)}, nil
}

func (s *Server) deleteImage(ctx context.Context, input *idInput) (*messageOutput, error) {
	id := pathID(input.ID)
	owner, ok := s.store.ImageOwner(id)
	if !ok {
		return nil, mapStoreError(ErrNotFound)
	}
	if _, err := s.ownedRecord(ctx, owner); err != nil {
		return nil, err
	}
	if err := s.store.DeleteImage(id); err != nil {
		return nil, mapStoreError(err)
	}
	return &messageOutput{Body: messageResponse{Message: "Image deleted"}}, nil
}

func validationError(err error) error {
	var verr *record.ValidationError
	if errors.As(err, &verr) {
		return errorf(http.StatusBadRequest, "Barcha maydonlarni to'ldiring: "+verr.Error())
	}
	return errorf(http.StatusBadRequest, err.Error())
}
