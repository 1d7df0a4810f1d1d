package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"ats-backend/internal/database"
	"ats-backend/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown test database: %v", err)
		}
	}
	os.Exit(code)
}

type memoryObjects struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}}
}

func (m *memoryObjects) UploadFile(_ context.Context, objectName string, data io.Reader) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectName] = b
	return nil
}

func (m *memoryObjects) DownloadFile(_ context.Context, objectName string) (io.ReadCloser, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[objectName]
	if !ok {
		return nil, 0, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}

func (m *memoryObjects) DeleteFile(_ context.Context, objectName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectName)
	return nil
}

func readAll(t *testing.T, r io.ReadCloser) []byte {
	t.Helper()
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}

func TestObjectName(t *testing.T) {
	name := ObjectName(ResumePrefix, ".pdf")
	assert.True(t, strings.HasPrefix(name, "resumes/"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotEqual(t, name, ObjectName(ResumePrefix, ".pdf"))
}

func TestStore_Database(t *testing.T) {
	ctx := context.Background()
	s := New(testDB.DB, nil)

	file, err := s.Save(ctx, []byte("%PDF-1.4 resume"), ".pdf", ResumePrefix)
	require.NoError(t, err)
	assert.NotZero(t, file.ID)
	assert.Nil(t, file.StorageObjectName)
	assert.Equal(t, fmt.Sprintf("files/%d.pdf", file.ID), Path(file))

	got, r, size, err := s.Open(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", got.Extension)
	assert.Equal(t, int64(len("%PDF-1.4 resume")), size)
	assert.Equal(t, []byte("%PDF-1.4 resume"), readAll(t, r))

	require.NoError(t, s.Delete(ctx, file.ID))
	_, _, _, err = s.Open(ctx, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	// second delete is a no-op
	assert.NoError(t, s.Delete(ctx, file.ID))
}

func TestStore_ObjectStorage(t *testing.T) {
	ctx := context.Background()
	objects := newMemoryObjects()
	s := New(testDB.DB, objects)

	file, err := s.Save(ctx, []byte("remote"), ".pdf", ResumePrefix)
	require.NoError(t, err)
	require.NotNil(t, file.StorageObjectName)
	assert.Nil(t, file.Content)
	assert.Equal(t, []byte("remote"), objects.objects[*file.StorageObjectName])
	assert.Equal(t, *file.StorageObjectName, Path(file))

	_, r, size, err := s.Open(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)
	assert.Equal(t, []byte("remote"), readAll(t, r))

	// a store without object storage cannot serve it
	_, _, _, err = New(testDB.DB, nil).Open(ctx, file.ID)
	assert.ErrorIs(t, err, ErrRemoteDisabled)

	require.NoError(t, s.Delete(ctx, file.ID))
	assert.Empty(t, objects.objects)
}

func TestStore_UploadError(t *testing.T) {
	objects := newMemoryObjects()
	objects.uploadErr = errors.New("boom")
	s := New(testDB.DB, objects)

	var before int64
	require.NoError(t, testDB.Model(&model.File{}).Count(&before).Error)

	_, err := s.Save(context.Background(), []byte("x"), ".pdf", ResumePrefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	var after int64
	require.NoError(t, testDB.Model(&model.File{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestNewCloudStorageClient(t *testing.T) {
	_, err := NewCloudStorageClient(context.Background(), "")
	assert.Error(t, err)

	c, err := NewCloudStorageClient(context.Background(), "ats-resumes", option.WithoutAuthentication())
	require.NoError(t, err)
	assert.Equal(t, "ats-resumes", c.BucketName)
	assert.NoError(t, c.Close())
}
