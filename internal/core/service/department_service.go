package service

import (
	"context"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

// DepartmentService manages the employer's single department.
type DepartmentService struct {
	api       ports.DepartmentsAPI
	validator *Validator
}

func NewDepartmentService(api ports.DepartmentsAPI, v *Validator) *DepartmentService {
	return &DepartmentService{api: api, validator: v}
}

// Mine returns the employer's department, or nil when none exists yet.
func (s *DepartmentService) Mine(ctx context.Context) (*domain.Department, error) {
	return s.api.Mine(ctx)
}

// Save normalizes and validates the form, then updates the existing
// department or creates the first one.
func (s *DepartmentService) Save(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error) {
	in.Phone = NormalizePhone(in.Phone)
	if err := s.validator.Department(in); err != nil {
		return nil, err
	}

	current, err := s.api.Mine(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return s.api.UpdateMine(ctx, in)
	}
	return s.api.Create(ctx, in)
}

// Delete removes the employer's department if there is one. It reports
// whether anything was deleted.
func (s *DepartmentService) Delete(ctx context.Context) (bool, error) {
	current, err := s.api.Mine(ctx)
	if err != nil || current == nil {
		return false, err
	}
	if err := s.api.Delete(ctx, current.ID); err != nil {
		return false, err
	}
	return true, nil
}
