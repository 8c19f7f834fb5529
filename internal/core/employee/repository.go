package employee

import "context"

// Repository は社員レコードの保管先の抽象です。
// 実装は並行呼び出しに対して安全であり、受け渡すレコードを内部状態と共有してはいけません。
type Repository interface {
	// Save は id をキーにレコードを挿入、または上書きします。
	Save(ctx context.Context, employee *Employee) error
	// FindByID は存在しない場合 ErrEmployeeNotFound を返します。
	FindByID(ctx context.Context, id string) (*Employee, error)
	// Delete は削除したレコードを返します。存在しない場合 ErrEmployeeNotFound を返します。
	Delete(ctx context.Context, id string) (*Employee, error)
	// List は全件のスナップショットを返します。順序は不定です。
	List(ctx context.Context) ([]*Employee, error)
}
