package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

var _ ports.ApplicationsAPI = (*ApplicationsClient)(nil)

// ApplicationsClient covers /applications.
type ApplicationsClient struct{ g *Gateway }

// List returns the calling student's applications.
func (c *ApplicationsClient) List(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.g.get(ctx, "/applications/", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *ApplicationsClient) Get(ctx context.Context, id int64) (*domain.Application, error) {
	var app domain.Application
	if err := c.g.get(ctx, fmt.Sprintf("/applications/%d", id), nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *ApplicationsClient) Create(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error) {
	var app domain.Application
	if err := c.g.sendJSON(ctx, http.MethodPost, "/applications/", in, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ByJob lists applications to one of the employer's postings.
func (c *ApplicationsClient) ByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.g.get(ctx, fmt.Sprintf("/applications/by-job/%d", jobID), nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *ApplicationsClient) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	body := struct {
		Status domain.ApplicationStatus `json:"status"`
	}{status}
	var app domain.Application
	if err := c.g.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d/status", id), body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UploadResume sends the file as multipart field "file" and returns where
// the backend stored it.
func (c *ApplicationsClient) UploadResume(ctx context.Context, fileName string, r io.Reader) (*domain.ResumeUpload, error) {
	var up domain.ResumeUpload
	if err := c.g.upload(ctx, "/applications/upload-resume", "file", fileName, r, &up); err != nil {
		return nil, err
	}
	return &up, nil
}

// ResumeURL turns a stored resume path into an absolute link. Absolute URLs
// are returned unchanged; an empty path yields "".
func (c *ApplicationsClient) ResumeURL(path string) string {
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case !strings.HasPrefix(path, "/"):
		path = "/" + path
	}
	return c.g.baseURL + path
}
