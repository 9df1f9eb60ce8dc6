package stubapi

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

const (
	maxResumeBytes = 5 << 20
	resumePrefix   = "/uploads/resumes/"
)

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// ApplicationHandler handles applications and resume files.
type ApplicationHandler struct {
	store *Store
}

func NewApplicationHandler(store *Store) *ApplicationHandler {
	return &ApplicationHandler{store: store}
}

type createApplicationRequest struct {
	JobID       int64  `json:"job_id" validate:"gt=0"`
	CoverLetter string `json:"cover_letter" validate:"required"`
	ResumeURL   string `json:"resume_url"`
}

type statusRequest struct {
	Status domain.ApplicationStatus `json:"status" validate:"required,oneof=submitted reviewed accepted rejected"`
}

// List returns the calling student's applications.
//
// @Summary      My applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  errorResponse
// @Router       /applications/ [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.ApplicationsByUser(user.ID))
}

// Get returns an application to its student or to the employer owning the job.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	app, err := h.store.Application(id)
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Application not found")
	}
	if err != nil {
		return err
	}
	if !h.canView(user, app) {
		return newDetail(http.StatusForbidden, "Access to this application is forbidden")
	}
	return c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) canView(user *domain.User, app *domain.Application) bool {
	switch user.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleStudent:
		return app.UserID == user.ID
	case domain.RoleEmployer:
		job, err := h.store.Job(app.JobID)
		return err == nil && job.EmployerID == user.ID
	}
	return false
}

// Create files an application for the calling student.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications/ [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.store.CreateApplication(user.ID, domain.ApplicationInput{
		JobID:       req.JobID,
		CoverLetter: strings.TrimSpace(req.CoverLetter),
		ResumeURL:   req.ResumeURL,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return newDetail(http.StatusNotFound, "Job not found")
	case errors.Is(err, domain.ErrJobClosed):
		return newProblem(http.StatusBadRequest, "Job is closed", "This posting no longer accepts applications", "Browse open postings")
	case errors.Is(err, domain.ErrAlreadyExists):
		return newProblem(http.StatusBadRequest, "Already applied", "You have already applied to this job", "Track it on your profile page")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// ByJob lists applications to one of the calling employer's postings.
//
// @Summary      Applications for a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {array}   domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/by-job/{id} [get]
func (h *ApplicationHandler) ByJob(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ownJob(user, jobID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.ApplicationsByJob(jobID))
}

// UpdateStatus moves an application through review.
//
// @Summary      Set application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Application ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.store.Application(id)
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Application not found")
	}
	if err != nil {
		return err
	}
	if err := h.ownJob(user, app.JobID); err != nil {
		return err
	}

	updated, err := h.store.SetApplicationStatus(id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ApplicationHandler) ownJob(user *domain.User, jobID int64) error {
	job, err := h.store.Job(jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Job not found")
	}
	if err != nil {
		return err
	}
	if job.EmployerID != user.ID && user.Role != domain.RoleAdmin {
		return newDetail(http.StatusForbidden, "Access to this job is forbidden")
	}
	return nil
}

// UploadResume stores a resume file and returns its URL.
//
// @Summary      Upload a resume
// @Tags         applications
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF, DOC or DOCX, at most 5 MB"
// @Success      200   {object}  domain.ResumeUpload
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications/upload-resume [post]
func (h *ApplicationHandler) UploadResume(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return validationErrors{{Loc: []string{"body", "file"}, Msg: "file is required", Type: "value_error.missing"}}
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !resumeExtensions[ext] {
		return newProblem(http.StatusBadRequest, "Unsupported file type",
			"Only PDF, DOC and DOCX files are accepted", "Convert the resume to PDF and try again")
	}
	if fh.Size > maxResumeBytes {
		return newProblem(http.StatusBadRequest, "File too large",
			"The resume must not exceed 5 MB", "Compress the file and try again")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes+1))
	if err != nil {
		return err
	}
	if len(data) > maxResumeBytes {
		return newProblem(http.StatusBadRequest, "File too large",
			"The resume must not exceed 5 MB", "Compress the file and try again")
	}

	name := uuid.NewString() + ext
	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	h.store.SaveResume(name, contentType, data)

	return c.JSON(http.StatusOK, domain.ResumeUpload{FileURL: resumePrefix + name})
}

// Resume serves a previously uploaded file.
//
// @Summary      Download a resume
// @Tags         applications
// @Produce      octet-stream
// @Param        name  path  string  true  "Stored file name"
// @Success      200
// @Failure      404   {object}  errorResponse
// @Router       /uploads/resumes/{name} [get]
func (h *ApplicationHandler) Resume(c echo.Context) error {
	contentType, data, err := h.store.Resume(c.Param("name"))
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "File not found")
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, data)
}
