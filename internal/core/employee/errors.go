package employee

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBody はリクエスト本体が存在しない場合に返却されます。
	ErrMissingBody = errors.New("employee: request body is required")
	// ErrEmployeeNotFound は社員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee: not found")
	// ErrValidation は入力値検証エラーの共通親です。
	ErrValidation = errors.New("employee: validation failed")

	ErrInvalidFirstName = fmt.Errorf("%w: firstName is required", ErrValidation)
	ErrInvalidLastName  = fmt.Errorf("%w: lastName is required", ErrValidation)
	ErrInvalidSalary    = fmt.Errorf("%w: salary must not be negative", ErrValidation)
	ErrInvalidAge       = fmt.Errorf("%w: age must be between 0 and 100", ErrValidation)
	ErrInvalidJobTitle  = fmt.Errorf("%w: jobTitle must not be blank", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email must be a valid email address", ErrValidation)
)
