package ports

import (
	"context"
	"io"
)

// UploadResult is the attachment store's response. URL is durable and is the
// only ownership the client keeps over the uploaded file.
type UploadResult struct {
	Success bool
	URL     string
	Message string
}

// UploadAPI is the remote attachment store.
type UploadAPI interface {
	UploadResume(ctx context.Context, filename string, size int64, content io.Reader) (*UploadResult, error)
}
