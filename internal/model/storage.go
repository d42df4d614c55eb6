package model

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrUnsupportedMediaType is returned when the declared MIME type is not
	// on the image allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrMediaTooLarge is returned when an upload exceeds the size limit.
	ErrMediaTooLarge = errors.New("media file too large")
)

// Upload carries the bytes and declared type of an uploaded file.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// MediaStore saves uploaded images to durable storage and serves them back.
// Save generates the object key; callers never control stored names.
type MediaStore interface {
	Save(ctx context.Context, upload Upload) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
