package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File は初期データファイルの構造です。
type File struct {
	Employees []Entry `yaml:"employees"`
}

// Entry は 1 名分の初期データです。作成リクエストと同じ項目を持ちます。
type Entry struct {
	FirstName        *string    `yaml:"firstName"`
	LastName         *string    `yaml:"lastName"`
	Salary           *int       `yaml:"salary"`
	Age              *int       `yaml:"age"`
	JobTitle         *string    `yaml:"jobTitle"`
	Email            *string    `yaml:"email"`
	ContractHireDate *time.Time `yaml:"contractHireDate"`
}

// Load は初期データファイルを読み込みます。path が空、またはファイルが存在しない場合は空を返します。
func Load(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: read file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}
	return f.Employees, nil
}

// Apply は各エントリを Service 経由で作成します。検証規則は通常の作成と同じです。
func Apply(ctx context.Context, svc employee.UseCase, entries []Entry, logger *zap.Logger) ([]*employee.Employee, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	created := make([]*employee.Employee, 0, len(entries))
	for i, e := range entries {
		emp, err := svc.CreateEmployee(ctx, e.toInput())
		if err != nil {
			return created, fmt.Errorf("seed: employees[%d]: %w", i, err)
		}
		logger.Debug("seeded employee", zap.String("id", emp.ID), zap.String("full_name", emp.FullName))
		created = append(created, emp)
	}

	logger.Info("seed applied", zap.Int("employees", len(created)))
	return created, nil
}

func (e Entry) toInput() *employee.CreateEmployeeInput {
	return &employee.CreateEmployeeInput{
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Salary:           e.Salary,
		Age:              e.Age,
		JobTitle:         e.JobTitle,
		Email:            e.Email,
		ContractHireDate: e.ContractHireDate,
	}
}
