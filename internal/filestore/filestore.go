// Package filestore keeps uploaded files. Content is written either into the files table
// or, when an object storage is configured, into a bucket with the row pointing at the object.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ats-backend/internal/model"
)

// ResumePrefix is the object prefix of resume uploads
const ResumePrefix = "resumes"

var (
	// ErrNotFound is returned when the file row does not exist
	ErrNotFound = errors.New("file not found")
	// ErrRemoteDisabled is returned when a file lives in object storage but none is configured
	ErrRemoteDisabled = errors.New("cloud storage is disabled while the requested file is stored remotely")
)

// ObjectStorage is a remote blob store such as a cloud storage bucket.
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, data io.Reader) error
	DownloadFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// Store saves and reads File rows
type Store struct {
	db      *gorm.DB
	objects ObjectStorage
}

// New creates a Store. A nil objects keeps file content in the database.
func New(db *gorm.DB, objects ObjectStorage) *Store {
	return &Store{db: db, objects: objects}
}

// ObjectName builds the object name of a new upload
func ObjectName(prefix, extension string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), extension)
}

// Path is where the content of file lives: its object name, or its row in the files table.
func Path(file model.File) string {
	if file.StorageObjectName != nil {
		return *file.StorageObjectName
	}
	return fmt.Sprintf("files/%d%s", file.ID, file.Extension)
}

// Save stores content and creates its File row.
func (s *Store) Save(ctx context.Context, content []byte, extension, prefix string) (model.File, error) {
	file := model.File{Extension: extension}

	if s.objects == nil {
		file.Content = content
	} else {
		objectName := ObjectName(prefix, extension)
		if err := s.objects.UploadFile(ctx, objectName, bytes.NewReader(content)); err != nil {
			return model.File{}, fmt.Errorf("failed to upload file: %w", err)
		}
		file.StorageObjectName = &objectName
	}

	if err := s.db.WithContext(ctx).Create(&file).Error; err != nil {
		if file.StorageObjectName != nil {
			_ = s.objects.DeleteFile(context.WithoutCancel(ctx), *file.StorageObjectName)
		}
		return model.File{}, fmt.Errorf("failed to save file: %w", err)
	}
	return file, nil
}

// Open returns the File row of id together with a reader of its content.
// size is -1 when the storage does not report it. The caller closes the reader.
func (s *Store) Open(ctx context.Context, id uint) (model.File, io.ReadCloser, int64, error) {
	var file model.File
	if err := s.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.File{}, nil, 0, ErrNotFound
		}
		return model.File{}, nil, 0, fmt.Errorf("failed to retrieve file: %w", err)
	}

	if file.StorageObjectName == nil {
		return file, io.NopCloser(bytes.NewReader(file.Content)), int64(len(file.Content)), nil
	}
	if s.objects == nil {
		return model.File{}, nil, 0, ErrRemoteDisabled
	}
	reader, size, err := s.objects.DownloadFile(ctx, *file.StorageObjectName)
	if err != nil {
		return model.File{}, nil, 0, fmt.Errorf("failed to download file from storage: %w", err)
	}
	return file, reader, size, nil
}

// Delete removes the File row and its object. Deleting a missing file is not an error.
func (s *Store) Delete(ctx context.Context, id uint) error {
	var file model.File
	err := s.db.WithContext(ctx).Select("id", "storage_object_name").First(&file, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve file: %w", err)
	}

	if file.StorageObjectName != nil && s.objects != nil {
		if err := s.objects.DeleteFile(ctx, *file.StorageObjectName); err != nil {
			return fmt.Errorf("failed to delete object: %w", err)
		}
	}
	if err := s.db.WithContext(ctx).Delete(&model.File{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
