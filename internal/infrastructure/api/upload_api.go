package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/campushire/recruit-portal/internal/core/ports"
	"github.com/campushire/recruit-portal/internal/metrics"
)

// UploadAPI implements ports.UploadAPI against the remote attachment store.
type UploadAPI struct {
	gw *Gateway
}

func NewUploadAPI(gw *Gateway) *UploadAPI {
	return &UploadAPI{gw: gw}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// UploadResume streams the file as a multipart form under the "resume" field.
// Callers enforce the size limit before reaching this point; the buffer here
// holds at most one resume.
func (a *UploadAPI) UploadResume(ctx context.Context, filename string, size int64, content io.Reader) (*ports.UploadResult, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	var resp uploadResponse
	err = a.gw.PostMultipart(ctx, "upload.resume", "/upload/resume", form.FormDataContentType(), &body, &resp)
	if err != nil {
		return nil, err
	}

	metrics.ResumeUploadBytes.Observe(float64(size))
	return &ports.UploadResult{Success: resp.Success, URL: resp.URL, Message: resp.Message}, nil
}
