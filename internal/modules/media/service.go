package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"creatorhub/internal/domain"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

const MaxFileSize = 200 * 1024 * 1024 // 200 MB

// allowedTypes maps the MIME types we accept to a canonical extension.
var allowedTypes = map[string]string{
	"image/jpeg":  ".jpg",
	"image/png":   ".png",
	"image/gif":   ".gif",
	"image/webp":  ".webp",
	"video/mp4":   ".mp4",
	"video/webm":  ".webm",
	"audio/mpeg":  ".mp3",
	"audio/m4a":   ".m4a",
	"audio/x-wav": ".wav",
}

// Service is the intake boundary: store the bytes, create the draft record,
// hand video/audio to the external transcoder. Every new item starts life
// as a draft with zero destinations.
type Service struct {
	contents   ContentCreator
	blobs      BlobStore
	transcoder Transcoder
	loggerf    func(format string, args ...interface{})
}

func NewService(contents ContentCreator, blobs BlobStore, transcoder Transcoder, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{contents: contents, blobs: blobs, transcoder: transcoder, loggerf: loggerf}
}

func (s *Service) Upload(ctx context.Context, ownerID int64, kind domain.ContentKind, title, description string, fileHeader *multipart.FileHeader) (*domain.ContentItem, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	kindInfo, err := filetype.Match(body)
	if err != nil || kindInfo == filetype.Unknown {
		return nil, ErrInvalidFileType
	}
	mime := kindInfo.MIME.Value
	ext, ok := allowedTypes[mime]
	if !ok {
		return nil, ErrInvalidFileType
	}

	id := uuid.New().String()
	key := fmt.Sprintf("%s/%s%s", kind, id, ext)

	url, err := s.blobs.Put(ctx, key, body, mime)
	if err != nil {
		return nil, fmt.Errorf("store media bytes: %w", err)
	}

	if title == "" {
		title = strings.TrimSuffix(fileHeader.Filename, "."+kindInfo.Extension)
	}

	item := &domain.ContentItem{
		ID:          id,
		OwnerID:     ownerID,
		Kind:        kind,
		Title:       title,
		Description: description,
		MediaURL:    url,
		Status:      domain.ContentDraft,
		PublishedTo: domain.DestinationSet{},
	}
	if err := s.contents.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content record: %w", err)
	}

	if s.transcoder != nil && (strings.HasPrefix(mime, "video/") || strings.HasPrefix(mime, "audio/")) {
		if terr := s.transcoder.EnqueueTranscode(ctx, kind, id, key); terr != nil {
			s.loggerf("level=error msg=transcode enqueue failed content_id=%s key=%s err=%v", id, key, terr)
		}
	}

	return item, nil
}
