package stubapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// ReviewHandler serves student reviews of postings and employer reviews of
// applicants.
type ReviewHandler struct {
	store *Store
}

func NewReviewHandler(store *Store) *ReviewHandler {
	return &ReviewHandler{store: store}
}

type reviewRequest struct {
	JobID   int64  `json:"job_id" validate:"gt=0"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

type employerReviewRequest struct {
	ApplicationID int64  `json:"application_id" validate:"gt=0"`
	Rating        int    `json:"rating" validate:"min=1,max=5"`
	Comment       string `json:"comment"`
}

// ForJob lists reviews of a posting.
//
// @Summary      Reviews for a job
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {array}   domain.Review
// @Failure      404  {object}  errorResponse
// @Router       /reviews/job/{id} [get]
func (h *ReviewHandler) ForJob(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reviews, err := h.store.ReviewsForJob(jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return jobNotFound(jobID)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create records the calling student's review of a posting.
//
// @Summary      Review a job
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reviews/ [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.store.CreateReview(user.ID, domain.ReviewInput{JobID: req.JobID, Rating: req.Rating, Comment: req.Comment})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return jobNotFound(req.JobID)
	case errors.Is(err, domain.ErrAlreadyExists):
		return newProblem(http.StatusBadRequest, "Review already exists",
			"You have already reviewed this job", "Each job can be reviewed once")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ForApplication returns the employer review of an application, or null.
//
// @Summary      Employer review for an application
// @Tags         employer-reviews
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.EmployerReview
// @Router       /employer-reviews/application/{id} [get]
func (h *ReviewHandler) ForApplication(c echo.Context) error {
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.EmployerReviewFor(appID))
}

// CreateEmployerReview rates an accepted applicant.
//
// @Summary      Review an applicant
// @Tags         employer-reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employerReviewRequest  true  "Review"
// @Success      201   {object}  domain.EmployerReview
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employer-reviews/ [post]
func (h *ReviewHandler) CreateEmployerReview(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req employerReviewRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.store.CreateEmployerReview(user.ID, domain.EmployerReviewInput{
		ApplicationID: req.ApplicationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return newProblem(http.StatusNotFound, "Application not found",
			"The application does not exist", "Check the application ID")
	case errors.Is(err, domain.ErrInvalidStatus):
		return newProblem(http.StatusBadRequest, "Cannot review",
			"Only accepted applications can be reviewed", "Accept the application first")
	case errors.Is(err, domain.ErrForbidden):
		return newDetail(http.StatusForbidden, "Access to this application is forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		return newProblem(http.StatusBadRequest, "Review already exists",
			"You have already reviewed this application", "Reviews cannot be edited yet")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

func jobNotFound(id int64) *HTTPError {
	return newProblem(http.StatusNotFound, "Job not found",
		"Job "+strconv.FormatInt(id, 10)+" does not exist", "Check the job ID")
}
