package stubapi

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

type account struct {
	user         domain.User
	passwordHash []byte
}

type department struct {
	domain.Department
	ownerID int64
}

type resumeFile struct {
	contentType string
	data        []byte
}

// Store is the stub backend's in-memory state. Every method is safe for
// concurrent use and returns copies.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextUser, nextJob, nextApp, nextDept, nextReview, nextEmpReview int64

	users       map[int64]*account
	emails      map[string]int64
	jobs        map[int64]domain.Job
	apps        map[int64]domain.Application
	departments map[int64]department
	reviews     map[int64]domain.Review
	empReviews  map[int64]domain.EmployerReview
	resumes     map[string]resumeFile
}

func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		users:       make(map[int64]*account),
		emails:      make(map[string]int64),
		jobs:        make(map[int64]domain.Job),
		apps:        make(map[int64]domain.Application),
		departments: make(map[int64]department),
		reviews:     make(map[int64]domain.Review),
		empReviews:  make(map[int64]domain.EmployerReview),
		resumes:     make(map[string]resumeFile),
	}
}

func (s *Store) timestamp() *time.Time {
	t := s.now()
	return &t
}

// ── Users ────────────────────────────────────────────────────────────────────

// CreateUser stores a new account. Emails are compared case-insensitively.
func (s *Store) CreateUser(name, email string, role domain.Role, passwordHash []byte) (*domain.User, error) {
	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emails[key]; exists {
		return nil, domain.ErrUserExists
	}
	s.nextUser++
	acc := &account{
		user:         domain.User{ID: s.nextUser, Name: name, Email: email, Role: role, CreatedAt: s.timestamp()},
		passwordHash: passwordHash,
	}
	s.users[acc.user.ID] = acc
	s.emails[key] = acc.user.ID

	u := acc.user
	return &u, nil
}

// UserByEmail returns the user and their password hash.
func (s *Store) UserByEmail(email string) (*domain.User, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, nil, domain.ErrUserNotFound
	}
	acc := s.users[id]
	u := acc.user
	return &u, slices.Clone(acc.passwordHash), nil
}

func (s *Store) UserByID(id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := acc.user
	return &u, nil
}

// ── Jobs ─────────────────────────────────────────────────────────────────────

// ListJobs returns postings matching filter, ordered by ID. Search matches
// title or description; location is a substring match.
func (s *Store) ListJobs(f domain.JobFilter) []domain.Job {
	search := strings.ToLower(f.Search)
	location := strings.ToLower(f.Location)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), search) &&
			!strings.Contains(strings.ToLower(j.Description), search) {
			continue
		}
		if f.EmploymentType != "" && !strings.EqualFold(j.EmploymentType, f.EmploymentType) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		if f.Remote != nil && j.Remote != *f.Remote {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		out = append(out, j)
	}
	sortByID(out, func(j domain.Job) int64 { return j.ID })
	return out
}

func (s *Store) Job(id int64) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func (s *Store) CreateJob(employerID int64, in domain.JobInput) *domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextJob++
	j := domain.Job{
		ID:             s.nextJob,
		EmployerID:     employerID,
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		Remote:         in.Remote,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Spots:          in.Spots,
		Status:         domain.JobOpen,
	}
	s.jobs[j.ID] = j
	return &j
}

func (s *Store) JobsByEmployer(employerID int64) []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Job{}
	for _, j := range s.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	sortByID(out, func(j domain.Job) int64 { return j.ID })
	return out
}

// ── Applications ─────────────────────────────────────────────────────────────

func (s *Store) ApplicationsByUser(userID int64) []domain.Application {
	return s.filterApps(func(a domain.Application) bool { return a.UserID == userID })
}

func (s *Store) ApplicationsByJob(jobID int64) []domain.Application {
	return s.filterApps(func(a domain.Application) bool { return a.JobID == jobID })
}

func (s *Store) filterApps(keep func(domain.Application) bool) []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Application{}
	for _, a := range s.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sortByID(out, func(a domain.Application) int64 { return a.ID })
	return out
}

func (s *Store) Application(id int64) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// CreateApplication files a student's application. The job must exist and
// be open, and a student may apply to a job only once.
func (s *Store) CreateApplication(userID int64, in domain.ApplicationInput) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[in.JobID]
	if !ok {
		return nil, fmt.Errorf("job %d: %w", in.JobID, domain.ErrNotFound)
	}
	if job.Status == domain.JobClosed {
		return nil, domain.ErrJobClosed
	}
	for _, a := range s.apps {
		if a.UserID == userID && a.JobID == in.JobID {
			return nil, domain.ErrAlreadyExists
		}
	}
	s.nextApp++
	now := s.timestamp()
	a := domain.Application{
		ID:          s.nextApp,
		JobID:       in.JobID,
		UserID:      userID,
		Status:      domain.ApplicationSubmitted,
		CoverLetter: in.CoverLetter,
		ResumeURL:   in.ResumeURL,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	s.apps[a.ID] = a
	return &a, nil
}

func (s *Store) SetApplicationStatus(id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = s.timestamp()
	s.apps[id] = a
	return &a, nil
}

// SaveResume keeps an uploaded file under name.
func (s *Store) SaveResume(name, contentType string, data []byte) {
	s.mu.Lock()
	s.resumes[name] = resumeFile{contentType: contentType, data: slices.Clone(data)}
	s.mu.Unlock()
}

func (s *Store) Resume(name string) (contentType string, data []byte, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.resumes[name]
	if !ok {
		return "", nil, domain.ErrNotFound
	}
	return f.contentType, slices.Clone(f.data), nil
}

// ── Departments ──────────────────────────────────────────────────────────────

func (s *Store) DepartmentOf(ownerID int64) (*domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.departmentOfLocked(ownerID); ok {
		return &d.Department, nil
	}
	return nil, domain.ErrNotFound
}

func (s *Store) departmentOfLocked(ownerID int64) (department, bool) {
	for _, d := range s.departments {
		if d.ownerID == ownerID {
			return d, true
		}
	}
	return department{}, false
}

// CreateDepartment gives an employer their single department.
func (s *Store) CreateDepartment(ownerID int64, in domain.DepartmentInput) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.departmentOfLocked(ownerID); exists {
		return nil, domain.ErrAlreadyExists
	}
	s.nextDept++
	d := department{
		Department: domain.Department{ID: s.nextDept, Name: in.Name, Office: in.Office, Phone: in.Phone},
		ownerID:    ownerID,
	}
	s.departments[d.ID] = d
	return &d.Department, nil
}

func (s *Store) UpdateDepartment(ownerID int64, in domain.DepartmentInput) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.departmentOfLocked(ownerID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.Name, d.Office, d.Phone = in.Name, in.Office, in.Phone
	s.departments[d.ID] = d
	return &d.Department, nil
}

func (s *Store) DeleteDepartment(ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.departments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if d.ownerID != ownerID {
		return domain.ErrForbidden
	}
	delete(s.departments, id)
	return nil
}

// ── Reviews ──────────────────────────────────────────────────────────────────

func (s *Store) ReviewsForJob(jobID int64) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.jobs[jobID]; !ok {
		return nil, domain.ErrNotFound
	}
	out := []domain.Review{}
	for _, r := range s.reviews {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	sortByID(out, func(r domain.Review) int64 { return r.ID })
	return out, nil
}

// CreateReview records a student's review of a posting, one per student per job.
func (s *Store) CreateReview(userID int64, in domain.ReviewInput) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[in.JobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, r := range s.reviews {
		if r.JobID == in.JobID && r.UserID == userID {
			return nil, domain.ErrAlreadyExists
		}
	}
	s.nextReview++
	r := domain.Review{
		ID:         s.nextReview,
		JobID:      in.JobID,
		EmployerID: job.EmployerID,
		UserID:     userID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  s.timestamp(),
	}
	s.reviews[r.ID] = r
	return &r, nil
}

// EmployerReviewFor returns nil when the application has not been reviewed.
func (s *Store) EmployerReviewFor(applicationID int64) *domain.EmployerReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.empReviews[applicationID]
	if !ok {
		return nil
	}
	return &r
}

// CreateEmployerReview rates an accepted applicant. Only the employer owning
// the job may do so, once per application.
func (s *Store) CreateEmployerReview(employerID int64, in domain.EmployerReviewInput) (*domain.EmployerReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[in.ApplicationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if app.Status != domain.ApplicationAccepted {
		return nil, domain.ErrInvalidStatus
	}
	job, ok := s.jobs[app.JobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}
	if _, exists := s.empReviews[app.ID]; exists {
		return nil, domain.ErrAlreadyExists
	}
	s.nextEmpReview++
	r := domain.EmployerReview{
		ID:            s.nextEmpReview,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		StudentID:     app.UserID,
		EmployerID:    employerID,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     s.timestamp(),
	}
	s.empReviews[app.ID] = r
	return &r, nil
}

// Stats reports row counts for the readiness probe.
func (s *Store) Stats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":            len(s.users),
		"jobs":             len(s.jobs),
		"applications":     len(s.apps),
		"departments":      len(s.departments),
		"reviews":          len(s.reviews),
		"employer_reviews": len(s.empReviews),
	}
}

func sortByID[T any](items []T, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
}
