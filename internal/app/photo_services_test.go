//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxUploadSize = 1 << 20

type photoFixture struct {
	connector *MockPhotoConnector
	repo      *MockPostRepository
	qr        *MockQRCodeGenerator
	upload    posts.PhotoUploadService
	metadata  posts.PhotoMetadataService
	download  posts.PhotoDownloadService
}

func newPhotoFixture(t *testing.T) *photoFixture {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	f := &photoFixture{
		connector: new(MockPhotoConnector),
		repo:      new(MockPostRepository),
		qr:        new(MockQRCodeGenerator),
	}

	var err error
	f.upload, err = NewPhotoUploadService(f.connector, f.repo, f.qr, testMaxUploadSize, logger)
	require.NoError(t, err)
	f.metadata, err = NewPhotoMetadataService(f.repo, f.connector, logger)
	require.NoError(t, err)
	f.download, err = NewPhotoDownloadService(f.repo, f.connector, logger)
	require.NoError(t, err)
	return f
}

func testPost(ownerID uint) *posts.Post {
	qrKey := "qr.png"
	qrURL := "http://localhost:8000/media/qr.png"
	return &posts.Post{
		ID:           7,
		ImageURL:     "http://localhost:8000/media/photo.png",
		StorageKey:   "photo.png",
		QRCodeURL:    &qrURL,
		QRStorageKey: &qrKey,
		ContentType:  "image/png",
		OwnerID:      ownerID,
	}
}

func TestNewPhotoUploadService_InvalidSize(t *testing.T) {
	_, err := NewPhotoUploadService(nil, nil, nil, 0, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestPhotoUploadService_Upload(t *testing.T) {
	f := newPhotoFixture(t)
	ctx := context.Background()
	data := testutil.CreateTestPNG(t)
	description := "sunset"

	f.connector.On("Upload", ctx, data, "sunset.png", "image/png").
		Return(&posts.StoredObject{Key: "photo.png", URL: "http://localhost:8000/media/photo.png"}, nil)
	f.qr.On("Generate", "http://localhost:8000/media/photo.png").Return([]byte("qr"), nil)
	f.connector.On("Upload", ctx, []byte("qr"), "qrcode.png", "image/png").
		Return(&posts.StoredObject{Key: "qr.png", URL: "http://localhost:8000/media/qr.png"}, nil)
	f.repo.On("Create", ctx, mock.MatchedBy(func(p *posts.Post) bool {
		return p.OwnerID == 3 && p.StorageKey == "photo.png" && *p.QRStorageKey == "qr.png" &&
			assert.ObjectsAreEqual([]string{"nature", "sky"}, p.TagNames())
	})).Return(nil)

	post, err := f.upload.Upload(ctx, 3, &posts.PhotoUpload{
		FileName:    "sunset.png",
		ContentType: "image/png",
		Data:        data,
		Description: &description,
		Tags:        []string{"Nature, sky", "nature"},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/media/qr.png", *post.QRCodeURL)
	assert.Equal(t, "sunset", *post.Description)
	f.repo.AssertExpectations(t)
	f.connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPhotoUploadService_Upload_Invalid(t *testing.T) {
	f := newPhotoFixture(t)

	_, err := f.upload.Upload(context.Background(), 3, &posts.PhotoUpload{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hello"),
	})
	assert.ErrorIs(t, err, posts.ErrInvalidUpload)
	f.connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoUploadService_Upload_TooManyTags(t *testing.T) {
	f := newPhotoFixture(t)

	_, err := f.upload.Upload(context.Background(), 3, &posts.PhotoUpload{
		FileName:    "a.png",
		ContentType: "image/png",
		Data:        []byte{1},
		Tags:        []string{"a,b,c,d,e,f"},
	})
	assert.ErrorIs(t, err, posts.ErrInvalidUpload)
}

func TestPhotoUploadService_Upload_TagEdges(t *testing.T) {
	fiftyRunes := strings.Repeat("я", posts.MaxTagLength)

	tests := []struct {
		name     string
		tags     []string
		wantTags []string
		wantErr  bool
	}{
		{name: "tag with a space", tags: []string{"New York"}, wantTags: []string{"new york"}},
		{name: "fifty ascii characters", tags: []string{strings.Repeat("x", posts.MaxTagLength)}, wantTags: []string{strings.Repeat("x", posts.MaxTagLength)}},
		{name: "thirty cyrillic characters", tags: []string{strings.Repeat("я", 30)}, wantTags: []string{strings.Repeat("я", 30)}},
		{name: "fifty cyrillic characters", tags: []string{fiftyRunes}, wantTags: []string{fiftyRunes}},
		{name: "fifty one cyrillic characters", tags: []string{fiftyRunes + "я"}, wantErr: true},
		{name: "control character", tags: []string{"line\x07bell"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPhotoFixture(t)
			ctx := context.Background()
			upload := &posts.PhotoUpload{FileName: "a.png", ContentType: "image/png", Data: []byte{1}, Tags: tt.tags}

			if tt.wantErr {
				_, err := f.upload.Upload(ctx, 3, upload)
				assert.ErrorIs(t, err, posts.ErrInvalidUpload)
				f.connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}

			f.connector.On("Upload", ctx, []byte{1}, "a.png", "image/png").
				Return(&posts.StoredObject{Key: "photo.png", URL: "http://localhost:8000/media/photo.png"}, nil)
			f.qr.On("Generate", mock.Anything).Return([]byte("qr"), nil)
			f.connector.On("Upload", ctx, []byte("qr"), "qrcode.png", "image/png").
				Return(&posts.StoredObject{Key: "qr.png", URL: "http://localhost:8000/media/qr.png"}, nil)
			f.repo.On("Create", ctx, mock.MatchedBy(func(p *posts.Post) bool {
				return p.Validate() == nil && assert.ObjectsAreEqual(tt.wantTags, p.TagNames())
			})).Return(nil)

			post, err := f.upload.Upload(ctx, 3, upload)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTags, post.TagNames())
		})
	}
}

func TestPhotoUploadService_Upload_CleansUpOnFailure(t *testing.T) {
	f := newPhotoFixture(t)
	ctx := context.Background()

	f.connector.On("Upload", ctx, []byte{1}, "a.png", "image/png").
		Return(&posts.StoredObject{Key: "photo.png", URL: "u1"}, nil)
	f.qr.On("Generate", "u1").Return([]byte("qr"), nil)
	f.connector.On("Upload", ctx, []byte("qr"), "qrcode.png", "image/png").
		Return(&posts.StoredObject{Key: "qr.png", URL: "u2"}, nil)
	f.repo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))
	f.connector.On("Delete", ctx, "photo.png").Return(nil)
	f.connector.On("Delete", ctx, "qr.png").Return(nil)

	_, err := f.upload.Upload(ctx, 3, &posts.PhotoUpload{FileName: "a.png", ContentType: "image/png", Data: []byte{1}})
	require.Error(t, err)
	f.connector.AssertCalled(t, "Delete", ctx, "photo.png")
	f.connector.AssertCalled(t, "Delete", ctx, "qr.png")
}

func TestPhotoMetadataService_UpdateDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		f := newPhotoFixture(t)
		post := testPost(3)
		f.repo.On("GetByID", ctx, uint(7)).Return(post, nil)
		f.repo.On("Update", ctx, post).Return(nil)

		description := "updated"
		updated, err := f.metadata.UpdateDescription(ctx, 7, 3, &description)
		require.NoError(t, err)
		assert.Equal(t, "updated", *updated.Description)
	})

	t.Run("other user", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)

		_, err := f.metadata.UpdateDescription(ctx, 7, 4, nil)
		assert.ErrorIs(t, err, posts.ErrNotOwner)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(nil, posts.ErrPostNotFound)

		_, err := f.metadata.UpdateDescription(ctx, 7, 3, nil)
		assert.ErrorIs(t, err, posts.ErrNotOwner)
	})
}

func TestPhotoMetadataService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)
		f.connector.On("Delete", ctx, "photo.png").Return(nil)
		f.connector.On("Delete", ctx, "qr.png").Return(nil)
		f.repo.On("DeleteByID", ctx, uint(7)).Return(nil)

		deleted, err := f.metadata.Delete(ctx, 7, 3, false)
		require.NoError(t, err)
		assert.Equal(t, uint(7), deleted.ID)
		f.repo.AssertExpectations(t)
		f.connector.AssertExpectations(t)
	})

	t.Run("admin deletes any photo", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)
		f.connector.On("Delete", ctx, mock.Anything).Return(nil)
		f.repo.On("DeleteByID", ctx, uint(7)).Return(nil)

		_, err := f.metadata.Delete(ctx, 7, 99, true)
		require.NoError(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)

		_, err := f.metadata.Delete(ctx, 7, 4, false)
		assert.ErrorIs(t, err, posts.ErrNotOwner)
		f.repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("storage failure after the row is gone", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)
		f.repo.On("DeleteByID", ctx, uint(7)).Return(nil)
		f.connector.On("Delete", ctx, "photo.png").Return(errors.New("unreachable"))
		f.connector.On("Delete", ctx, "qr.png").Return(nil)

		deleted, err := f.metadata.Delete(ctx, 7, 3, false)
		require.NoError(t, err)
		assert.Equal(t, uint(7), deleted.ID)
		f.connector.AssertCalled(t, "Delete", ctx, "qr.png")
	})

	t.Run("row failure keeps the objects", func(t *testing.T) {
		f := newPhotoFixture(t)
		f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)
		f.repo.On("DeleteByID", ctx, uint(7)).Return(errors.New("locked"))

		_, err := f.metadata.Delete(ctx, 7, 3, false)
		require.Error(t, err)
		f.connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPhotoDownloadService(t *testing.T) {
	ctx := context.Background()
	f := newPhotoFixture(t)

	f.repo.On("GetByID", ctx, uint(7)).Return(testPost(3), nil)
	f.connector.On("Download", ctx, "photo.png").Return([]byte("image"), nil)
	f.connector.On("Download", ctx, "qr.png").Return([]byte("qr"), nil)

	data, contentType, err := f.download.Download(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("image"), data)
	assert.Equal(t, "image/png", contentType)

	qr, err := f.download.QRCode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("qr"), qr)
}

func TestPhotoDownloadService_QRCodeMissing(t *testing.T) {
	ctx := context.Background()
	f := newPhotoFixture(t)

	post := testPost(3)
	post.QRStorageKey = nil
	f.repo.On("GetByID", ctx, uint(7)).Return(post, nil)

	_, err := f.download.QRCode(ctx, 7)
	assert.ErrorIs(t, err, posts.ErrObjectNotFound)
}
