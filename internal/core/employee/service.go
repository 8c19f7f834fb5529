package employee

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator は社員 ID を払い出します。
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Service は社員に関するユースケースをまとめます。
// Repository への書き込みは Service のみが行います。
type Service struct {
	repo  Repository
	clock Clock
	ids   IDGenerator
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in *CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, id string, in *UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, ids IDGenerator) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	return &Service{repo: repo, clock: clock, ids: ids}
}

// CreateEmployeeInput は社員作成時の入力です。nil のポインタ項目は未指定を表します。
type CreateEmployeeInput struct {
	FirstName        *string
	LastName         *string
	Salary           *int
	Age              *int
	JobTitle         *string
	Email            *string
	ContractHireDate *time.Time
}

// UpdateEmployeeInput は社員の部分更新の入力です。nil の項目は変更しません。
// 契約終了日は更新対象に含めません。
type UpdateEmployeeInput struct {
	FirstName        *string
	LastName         *string
	Salary           *int
	Age              *int
	JobTitle         *string
	Email            *string
	ContractHireDate *time.Time
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// CreateEmployee は新しい社員を作成します。
func (s *Service) CreateEmployee(ctx context.Context, in *CreateEmployeeInput) (*Employee, error) {
	if in == nil {
		return nil, ErrMissingBody
	}

	firstName, err := normalizeName(in.FirstName, ErrInvalidFirstName)
	if err != nil {
		return nil, err
	}

	lastName, err := normalizeName(in.LastName, ErrInvalidLastName)
	if err != nil {
		return nil, err
	}

	if err := validateSalary(in.Salary); err != nil {
		return nil, err
	}
	if err := validateAge(in.Age); err != nil {
		return nil, err
	}

	jobTitle, err := normalizeJobTitle(in.JobTitle)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	hiredAt := cloneTime(in.ContractHireDate)
	if hiredAt == nil {
		now := s.clock.Now()
		hiredAt = &now
	}

	emp := &Employee{
		ID:               s.ids.NewID(),
		FirstName:        firstName,
		LastName:         lastName,
		FullName:         firstName + " " + lastName,
		Salary:           cloneInt(in.Salary),
		Age:              cloneInt(in.Age),
		JobTitle:         jobTitle,
		Email:            email,
		ContractHireDate: hiredAt,
	}

	if err := s.repo.Save(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	return s.repo.FindByID(ctx, in.ID)
}

// ListEmployees は全社員を取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []*Employee{}
	}
	return employees, nil
}

// UpdateEmployee は指定された項目のみを更新します。
//
// 取得したレコードのコピーに対して全項目を検証してから書き戻すため、
// 検証エラー時は保存済みのレコードは変更されません。
// 取得と書き戻しの間に同じ ID が削除された場合、書き戻しでレコードが再作成されます。
func (s *Service) UpdateEmployee(ctx context.Context, id string, in *UpdateEmployeeInput) (*Employee, error) {
	if in == nil {
		return nil, ErrMissingBody
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := existing.Clone()

	if in.FirstName != nil {
		firstName, err := normalizeName(in.FirstName, ErrInvalidFirstName)
		if err != nil {
			return nil, err
		}
		next.FirstName = firstName
	}

	if in.LastName != nil {
		lastName, err := normalizeName(in.LastName, ErrInvalidLastName)
		if err != nil {
			return nil, err
		}
		next.LastName = lastName
	}

	if in.FirstName != nil || in.LastName != nil {
		next.FullName = strings.TrimSpace(strings.TrimSpace(next.FirstName) + " " + strings.TrimSpace(next.LastName))
	}

	if in.Salary != nil {
		if err := validateSalary(in.Salary); err != nil {
			return nil, err
		}
		next.Salary = cloneInt(in.Salary)
	}

	if in.Age != nil {
		if err := validateAge(in.Age); err != nil {
			return nil, err
		}
		next.Age = cloneInt(in.Age)
	}

	if in.JobTitle != nil {
		jobTitle, err := normalizeJobTitle(in.JobTitle)
		if err != nil {
			return nil, err
		}
		next.JobTitle = jobTitle
	}

	if in.Email != nil {
		email, err := normalizeEmail(in.Email)
		if err != nil {
			return nil, err
		}
		next.Email = email
	}

	if in.ContractHireDate != nil {
		next.ContractHireDate = cloneTime(in.ContractHireDate)
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}

	return next, nil
}

// DeleteEmployee は社員を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	_, err := s.repo.Delete(ctx, in.ID)
	return err
}

func normalizeName(raw *string, invalid error) (string, error) {
	if raw == nil {
		return "", invalid
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
}

func validateSalary(salary *int) error {
	if salary != nil && *salary < 0 {
		return ErrInvalidSalary
	}
	return nil
}

func validateAge(age *int) error {
	if age != nil && (*age < 0 || *age > 100) {
		return ErrInvalidAge
	}
	return nil
}

func normalizeJobTitle(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, ErrInvalidJobTitle
	}
	return &trimmed, nil
}

func normalizeEmail(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if !IsValidEmail(*raw) {
		return nil, ErrInvalidEmail
	}
	trimmed := strings.TrimSpace(*raw)
	return &trimmed, nil
}

// IsValidEmail は最小限の形式チェックを行います。
// '@' がちょうど 1 つ先頭以外にあり、ドメイン部が空でなく '.' を含むことのみを確認します。
func IsValidEmail(raw string) bool {
	email := strings.TrimSpace(raw)
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	domain := email[at+1:]
	return domain != "" && strings.Contains(domain, ".")
}
