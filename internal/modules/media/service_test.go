package media

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creatorhub/internal/domain"
)

type MockContentCreator struct {
	mock.Mock
}

func (m *MockContentCreator) Create(ctx context.Context, c *domain.ContentItem) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

type MockTranscoder struct {
	mock.Mock
}

func (m *MockTranscoder) EnqueueTranscode(ctx context.Context, kind domain.ContentKind, contentID, objectKey string) error {
	args := m.Called(ctx, kind, contentID, objectKey)
	return args.Error(0)
}

var (
	pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	mp4Bytes = []byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0, 0, 0, 0}
)

func uploadHeader(t *testing.T, filename string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(buf.Len()) + 1024)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestService_Upload_ImageBecomesDraft(t *testing.T) {
	contents := new(MockContentCreator)
	blobs := new(MockBlobStore)

	blobs.On("Put", mock.Anything, mock.Anything, pngBytes, "image/png").Return("https://cdn.example/media/x.png", nil)
	contents.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.ContentItem) bool {
		return c.OwnerID == 7 &&
			c.Kind == domain.KindMedia &&
			c.Status == domain.ContentDraft &&
			c.PublishedTo.IsEmpty() &&
			c.MediaURL == "https://cdn.example/media/x.png"
	})).Return(nil)

	svc := NewService(contents, blobs, nil, nil)
	item, err := svc.Upload(context.Background(), 7, domain.KindMedia, "Sunset", "", uploadHeader(t, "sunset.png", pngBytes))

	assert.NoError(t, err)
	assert.Equal(t, "Sunset", item.Title)
	contents.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestService_Upload_TitleFallsBackToFilename(t *testing.T) {
	contents := new(MockContentCreator)
	blobs := new(MockBlobStore)

	blobs.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.example/x.png", nil)
	contents.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, blobs, nil, nil)
	item, err := svc.Upload(context.Background(), 7, domain.KindPortfolio, "", "", uploadHeader(t, "golden-hour.png", pngBytes))

	assert.NoError(t, err)
	assert.Equal(t, "golden-hour", item.Title)
}

func TestService_Upload_UnrecognizedBytesRejected(t *testing.T) {
	contents := new(MockContentCreator)
	blobs := new(MockBlobStore)

	svc := NewService(contents, blobs, nil, nil)
	_, err := svc.Upload(context.Background(), 7, domain.KindMedia, "", "", uploadHeader(t, "notes.txt", []byte("just some plain text")))

	assert.ErrorIs(t, err, ErrInvalidFileType)
	blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	contents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upload_EmptyFileRejected(t *testing.T) {
	svc := NewService(new(MockContentCreator), new(MockBlobStore), nil, nil)
	_, err := svc.Upload(context.Background(), 7, domain.KindMedia, "", "", uploadHeader(t, "empty.png", nil))

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestService_Upload_VideoEnqueuesTranscode(t *testing.T) {
	contents := new(MockContentCreator)
	blobs := new(MockBlobStore)
	transcoder := new(MockTranscoder)

	blobs.On("Put", mock.Anything, mock.Anything, mock.Anything, "video/mp4").Return("https://cdn.example/v.mp4", nil)
	contents.On("Create", mock.Anything, mock.Anything).Return(nil)
	transcoder.On("EnqueueTranscode", mock.Anything, domain.KindMedia, mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, blobs, transcoder, nil)
	_, err := svc.Upload(context.Background(), 7, domain.KindMedia, "Clip", "", uploadHeader(t, "clip.mp4", mp4Bytes))

	assert.NoError(t, err)
	transcoder.AssertExpectations(t)
}

func TestService_Upload_TranscodeFailureIsNotFatal(t *testing.T) {
	contents := new(MockContentCreator)
	blobs := new(MockBlobStore)
	transcoder := new(MockTranscoder)

	blobs.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.example/v.mp4", nil)
	contents.On("Create", mock.Anything, mock.Anything).Return(nil)
	transcoder.On("EnqueueTranscode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewService(contents, blobs, transcoder, nil)
	item, err := svc.Upload(context.Background(), 7, domain.KindMedia, "Clip", "", uploadHeader(t, "clip.mp4", mp4Bytes))

	assert.NoError(t, err)
	assert.NotNil(t, item)
}
