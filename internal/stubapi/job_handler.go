package stubapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	store *Store
}

func NewJobHandler(store *Store) *JobHandler {
	return &JobHandler{store: store}
}

// List returns postings, optionally filtered.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        search           query     string  false  "Title or description contains"
// @Param        employment_type  query     string  false  "Employment type"
// @Param        location         query     string  false  "Location contains"
// @Param        remote           query     bool    false  "Remote only / on-site only"
// @Param        status           query     string  false  "open or closed"
// @Success      200              {array}   domain.Job
// @Failure      422              {object}  errorResponse
// @Router       /jobs/ [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := domain.JobFilter{
		Search:         c.QueryParam("search"),
		EmploymentType: c.QueryParam("employment_type"),
		Location:       c.QueryParam("location"),
		Status:         domain.JobStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			return validationErrors{{Loc: []string{"query", "remote"}, Msg: "remote must be a boolean", Type: "type_error.bool"}}
		}
		filter.Remote = &remote
	}
	return c.JSON(http.StatusOK, h.store.ListJobs(filter))
}

// Get returns one posting.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.store.Job(id)
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Job not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create publishes a posting owned by the calling employer.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.JobInput  true  "Posting"
// @Success      201   {object}  domain.Job
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jobs/ [post]
func (h *JobHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req domain.JobInput
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.store.CreateJob(user.ID, req))
}

// Mine lists the calling employer's postings.
//
// @Summary      My jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /jobs/my [get]
func (h *JobHandler) Mine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.JobsByEmployer(user.ID))
}
