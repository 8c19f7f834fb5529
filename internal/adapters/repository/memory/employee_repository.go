package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
)

// EmployeeRepository はプロセス内のマップを利用した社員保管庫の実装です。
// 受け取ったレコード、返却するレコードはいずれもコピーであり、内部状態とは共有しません。
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]*employee.Employee
}

// NewEmployeeRepository は空の EmployeeRepository を生成します。
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]*employee.Employee)}
}

// Save は社員を挿入、または上書きします。
func (r *EmployeeRepository) Save(_ context.Context, e *employee.Employee) error {
	stored := e.Clone()

	r.mu.Lock()
	r.employees[stored.ID] = stored
	r.mu.Unlock()

	return nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	r.mu.RLock()
	found, ok := r.employees[id]
	r.mu.RUnlock()

	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return found.Clone(), nil
}

// Delete は社員を削除し、削除前のレコードを返します。
func (r *EmployeeRepository) Delete(_ context.Context, id string) (*employee.Employee, error) {
	r.mu.Lock()
	removed, ok := r.employees[id]
	if ok {
		delete(r.employees, id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return removed, nil
}

// List は全社員のスナップショットを返します。
func (r *EmployeeRepository) List(_ context.Context) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]*employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		employees = append(employees, e.Clone())
	}
	return employees, nil
}

// Len は保持している社員数を返します。
func (r *EmployeeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees)
}
