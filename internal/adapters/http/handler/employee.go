package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
)

var (
	errInvalidID     = errors.New("invalid id")
	errMalformedBody = errors.New("request body must be valid JSON")
)

// EmployeeHTTPHandler は社員リソースの HTTP 実装です。
type EmployeeHTTPHandler struct {
	svc employee.UseCase
}

// NewEmployeeHTTPHandler は EmployeeHTTPHandler を生成します。
func NewEmployeeHTTPHandler(svc employee.UseCase) *EmployeeHTTPHandler {
	return &EmployeeHTTPHandler{svc: svc}
}

// createEmployeeRequest は作成リクエストの JSON 表現です。契約終了日は受け付けません。
type createEmployeeRequest struct {
	FirstName        *string    `json:"firstName"`
	LastName         *string    `json:"lastName"`
	Salary           *int       `json:"salary"`
	Age              *int       `json:"age"`
	JobTitle         *string    `json:"jobTitle"`
	Email            *string    `json:"email"`
	ContractHireDate *time.Time `json:"contractHireDate"`
}

// updateEmployeeRequest は部分更新リクエストの JSON 表現です。
type updateEmployeeRequest struct {
	FirstName        *string    `json:"firstName"`
	LastName         *string    `json:"lastName"`
	Salary           *int       `json:"salary"`
	Age              *int       `json:"age"`
	JobTitle         *string    `json:"jobTitle"`
	Email            *string    `json:"email"`
	ContractHireDate *time.Time `json:"contractHireDate"`
}

// employeeResponse は社員の JSON 表現です。未設定の項目も null として常に出力します。
type employeeResponse struct {
	UUID                    string     `json:"uuid"`
	FirstName               string     `json:"firstName"`
	LastName                string     `json:"lastName"`
	FullName                string     `json:"fullName"`
	Salary                  *int       `json:"salary"`
	Age                     *int       `json:"age"`
	JobTitle                *string    `json:"jobTitle"`
	Email                   *string    `json:"email"`
	ContractHireDate        *time.Time `json:"contractHireDate"`
	ContractTerminationDate *time.Time `json:"contractTerminationDate"`
}

// ListEmployees は全社員を返します。
func (h *EmployeeHTTPHandler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, toEmployeeResponse(emp))
	}
	c.JSON(http.StatusOK, resp)
}

// GetEmployee は社員を 1 件返します。
func (h *EmployeeHTTPHandler) GetEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	found, err := h.svc.GetEmployee(c.Request.Context(), employee.GetEmployeeInput{ID: id})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(found))
}

// CreateEmployee は社員を作成し 201 を返します。
func (h *EmployeeHTTPHandler) CreateEmployee(c *gin.Context) {
	req, err := decodeBody[createEmployeeRequest](c)
	if err != nil {
		writeError(c, err)
		return
	}

	var in *employee.CreateEmployeeInput
	if req != nil {
		in = &employee.CreateEmployeeInput{
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Salary:           req.Salary,
			Age:              req.Age,
			JobTitle:         req.JobTitle,
			Email:            req.Email,
			ContractHireDate: req.ContractHireDate,
		}
	}

	created, err := h.svc.CreateEmployee(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// UpdateEmployee はリクエストに含まれる項目のみを更新します。
func (h *EmployeeHTTPHandler) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	req, err := decodeBody[updateEmployeeRequest](c)
	if err != nil {
		writeError(c, err)
		return
	}

	var in *employee.UpdateEmployeeInput
	if req != nil {
		in = &employee.UpdateEmployeeInput{
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Salary:           req.Salary,
			Age:              req.Age,
			JobTitle:         req.JobTitle,
			Email:            req.Email,
			ContractHireDate: req.ContractHireDate,
		}
	}

	updated, err := h.svc.UpdateEmployee(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// DeleteEmployee は社員を削除し 204 を返します。
func (h *EmployeeHTTPHandler) DeleteEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.svc.DeleteEmployee(c.Request.Context(), employee.DeleteEmployeeInput{ID: id}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (string, error) {
	parsed, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", errInvalidID
	}
	return parsed.String(), nil
}

// decodeBody は空の本体および JSON の null を nil として返します。
func decodeBody[T any](c *gin.Context) (*T, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errMalformedBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out *T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errMalformedBody
	}
	return out, nil
}

func toEmployeeResponse(emp *employee.Employee) employeeResponse {
	return employeeResponse{
		UUID:                    emp.ID,
		FirstName:               emp.FirstName,
		LastName:                emp.LastName,
		FullName:                emp.FullName,
		Salary:                  emp.Salary,
		Age:                     emp.Age,
		JobTitle:                emp.JobTitle,
		Email:                   emp.Email,
		ContractHireDate:        emp.ContractHireDate,
		ContractTerminationDate: emp.ContractTerminationDate,
	}
}
