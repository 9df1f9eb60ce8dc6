package domain

// Department is the employer's organisational unit.
type Department struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Office string `json:"office,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// DepartmentInput is the create/update payload.
type DepartmentInput struct {
	Name   string `json:"name"`
	Office string `json:"office,omitempty"`
	Phone  string `json:"phone,omitempty"`
}
