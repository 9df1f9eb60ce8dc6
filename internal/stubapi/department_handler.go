package stubapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// DepartmentHandler manages the calling employer's department.
type DepartmentHandler struct {
	store *Store
}

func NewDepartmentHandler(store *Store) *DepartmentHandler {
	return &DepartmentHandler{store: store}
}

type departmentRequest struct {
	Name   string `json:"name" validate:"required"`
	Office string `json:"office"`
	Phone  string `json:"phone" validate:"omitempty,len=10,numeric,startswith=9"`
}

func (r departmentRequest) input() domain.DepartmentInput {
	return domain.DepartmentInput{Name: r.Name, Office: r.Office, Phone: r.Phone}
}

// Mine returns the calling employer's department.
//
// @Summary      My department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  errorResponse  "No department yet"
// @Router       /departments/my-department [get]
func (h *DepartmentHandler) Mine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	dep, err := h.store.DepartmentOf(user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Department not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dep)
}

// Create gives the calling employer a department.
//
// @Summary      Create department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /departments/ [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dep, err := h.store.CreateDepartment(user.ID, req.input())
	if errors.Is(err, domain.ErrAlreadyExists) {
		return newProblem(http.StatusBadRequest, "Department already exists",
			"An employer may have only one department", "Edit the existing department instead")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dep)
}

// UpdateMine edits the calling employer's department.
//
// @Summary      Update my department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department"
// @Success      200   {object}  domain.Department
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /departments/my-department [put]
func (h *DepartmentHandler) UpdateMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return newDetail(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dep, err := h.store.UpdateDepartment(user.ID, req.input())
	if errors.Is(err, domain.ErrNotFound) {
		return newDetail(http.StatusNotFound, "Department not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dep)
}

// Delete removes a department owned by the calling employer.
//
// @Summary      Delete department
// @Tags         departments
// @Security     BearerAuth
// @Param        id   path  int  true  "Department ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	switch err := h.store.DeleteDepartment(user.ID, id); {
	case errors.Is(err, domain.ErrNotFound):
		return newDetail(http.StatusNotFound, "Department not found")
	case errors.Is(err, domain.ErrForbidden):
		return newDetail(http.StatusForbidden, "Access to this department is forbidden")
	case err != nil:
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
