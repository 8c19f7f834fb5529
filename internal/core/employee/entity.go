package employee

import "time"

// Employee は社員エンティティです。
type Employee struct {
	ID                      string
	FirstName               string
	LastName                string
	FullName                string
	Salary                  *int
	Age                     *int
	JobTitle                *string
	Email                   *string
	ContractHireDate        *time.Time
	ContractTerminationDate *time.Time
}

// Clone はポインタ項目も含めて独立したコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	c := *e
	c.Salary = cloneInt(e.Salary)
	c.Age = cloneInt(e.Age)
	c.JobTitle = cloneString(e.JobTitle)
	c.Email = cloneString(e.Email)
	c.ContractHireDate = cloneTime(e.ContractHireDate)
	c.ContractTerminationDate = cloneTime(e.ContractTerminationDate)
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}
