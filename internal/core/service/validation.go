package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

const (
	MinPasswordLength    = 6
	MaxPasswordBytes     = 72
	MinCoverLetterLength = 50
	MaxResumeBytes       = 5 << 20
)

var (
	resumeExtensions = []string{".pdf", ".doc", ".docx"}
	mobilePattern    = regexp.MustCompile(`^9\d{9}$`)
	nonDigits        = regexp.MustCompile(`\D`)
)

// ValidationError collects per-field messages for input rejected before any
// request is sent. It never crosses into the API layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

// Field returns the message for one field, or "".
func (e *ValidationError) Field(name string) string { return e.Fields[name] }

// registrationForm, applicationForm, resumeFile and departmentForm carry the
// validation rules of the corresponding input screens.
type registrationForm struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank,email"`
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=student employer admin"`
}

type applicationForm struct {
	JobID       int64  `json:"job_id" validate:"gt=0"`
	CoverLetter string `json:"cover_letter" validate:"notblank,trimmedmin=50"`
}

// ResumeFile describes a file picked for upload.
type ResumeFile struct {
	Name string `json:"resume_file" validate:"required,resumeext"`
	Size int64  `json:"resume_size" validate:"max=5242880"`
}

type departmentForm struct {
	Name   string `json:"name" validate:"notblank"`
	Office string `json:"office"`
	Phone  string `json:"phone" validate:"omitempty,mobile"`
}

// Validator wraps go-playground/validator with the board's custom rules and
// human-readable messages.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the custom tags registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	_ = v.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= limit
	})
	_ = v.RegisterValidation("resumeext", func(fl validator.FieldLevel) bool {
		return hasResumeExtension(fl.Field().String())
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Registration checks the sign-up form.
func (val *Validator) Registration(r domain.Registration) error {
	return val.check(registrationForm{
		Name:            r.Name,
		Email:           strings.TrimSpace(r.Email),
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Role:            string(r.Role),
	})
}

// Application checks the apply form.
func (val *Validator) Application(in domain.ApplicationInput) error {
	return val.check(applicationForm{JobID: in.JobID, CoverLetter: in.CoverLetter})
}

// Resume checks a picked resume file by name and size.
func (val *Validator) Resume(f ResumeFile) error {
	return val.check(f)
}

// Department checks the department form. Phone must already be normalized.
func (val *Validator) Department(in domain.DepartmentInput) error {
	return val.check(departmentForm(in))
}

// JobInput checks the create-posting form.
func (val *Validator) JobInput(in domain.JobInput) error {
	return val.check(in)
}

// Review checks a job review.
func (val *Validator) Review(in domain.ReviewInput) error {
	return val.check(in)
}

// EmployerReview checks an employer's review of an applicant.
func (val *Validator) EmployerReview(in domain.EmployerReviewInput) error {
	return val.check(in)
}

func (val *Validator) check(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(ve))}
	for _, fe := range ve {
		if _, seen := out.Fields[fe.Field()]; !seen {
			out.Fields[fe.Field()] = fieldError(fe)
		}
	}
	return out
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Field() == "password" {
			return fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Field() == "resume_size" {
			return "file is too large, maximum size is 5 MB"
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s cannot be longer than %s bytes", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "trimmedmin":
		return fmt.Sprintf("%s must contain at least %s characters", field, fe.Param())
	case "resumeext":
		return "unsupported format, use PDF, DOC or DOCX"
	case "mobile":
		return "phone must be 10 digits starting with 9 (9XXXXXXXXX)"
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, "YYYY-MM-DD")
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func hasResumeExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range resumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// NormalizePhone keeps the digits of a typed phone number, drops a leading
// +7 country code and caps the result at ten digits.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "+7")
	digits := nonDigits.ReplaceAllString(trimmed, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}
