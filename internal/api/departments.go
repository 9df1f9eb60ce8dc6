package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

var _ ports.DepartmentsAPI = (*DepartmentsClient)(nil)

// DepartmentsClient covers /departments.
type DepartmentsClient struct{ g *Gateway }

// Mine returns the calling employer's department, or nil when they have not
// created one yet.
func (c *DepartmentsClient) Mine(ctx context.Context) (*domain.Department, error) {
	var dep *domain.Department
	if err := c.g.get(ctx, myDepartmentPath, nil, &dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (c *DepartmentsClient) Create(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error) {
	var dep domain.Department
	if err := c.g.sendJSON(ctx, http.MethodPost, "/departments/", in, &dep); err != nil {
		return nil, err
	}
	return &dep, nil
}

func (c *DepartmentsClient) UpdateMine(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error) {
	var dep domain.Department
	if err := c.g.sendJSON(ctx, http.MethodPut, myDepartmentPath, in, &dep); err != nil {
		return nil, err
	}
	return &dep, nil
}

func (c *DepartmentsClient) Delete(ctx context.Context, id int64) error {
	return c.g.delete(ctx, fmt.Sprintf("/departments/%d", id))
}
