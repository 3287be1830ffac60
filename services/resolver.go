package services

import (
	"errors"
	"fmt"

	"todoprogress/models"
	"todoprogress/utils"
)

// ErrEmployeeNotFound は社員を解決できなかったことを表します
var ErrEmployeeNotFound = errors.New("社員が見つかりません")

// ResolutionError は社員プロフィールの解決失敗です。
// 取得エラーも name の欠落も同じく ErrEmployeeNotFound として扱います
type ResolutionError struct {
	EmployeeID int
	Err        error // 取得エラー。name 欠落の場合は nil
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("社員ID %d: %v: %v", e.EmployeeID, ErrEmployeeNotFound, e.Err)
	}
	return fmt.Sprintf("社員ID %d: %v", e.EmployeeID, ErrEmployeeNotFound)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Is は errors.Is(err, ErrEmployeeNotFound) を常に満たします
func (e *ResolutionError) Is(target error) bool {
	return target == ErrEmployeeNotFound
}

// EmployeeResolver は社員IDをプロフィールに解決します
type EmployeeResolver struct {
	source DataSource
}

// NewEmployeeResolver は新しいリゾルバを作成します
func NewEmployeeResolver(source DataSource) *EmployeeResolver {
	return &EmployeeResolver{source: source}
}

// Resolve は社員1名のプロフィールを取得します
func (r *EmployeeResolver) Resolve(employeeID int) (models.EmployeeProfile, error) {
	obj, err := r.source.GetUser(employeeID)
	if err != nil {
		return models.EmployeeProfile{}, &ResolutionError{EmployeeID: employeeID, Err: err}
	}

	name, ok := stringField(obj, "name")
	if !ok {
		return models.EmployeeProfile{}, &ResolutionError{EmployeeID: employeeID}
	}
	username, _ := stringField(obj, "username")

	return models.EmployeeProfile{
		ID:       employeeID,
		Name:     name,
		Username: username,
	}, nil
}

// ResolveAll は全社員のプロフィールを取得します。id の無いエントリはスキップします
func (r *EmployeeResolver) ResolveAll() ([]models.EmployeeProfile, error) {
	users, err := r.source.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("社員一覧取得エラー: %w", err)
	}

	profiles := make([]models.EmployeeProfile, 0, len(users))
	for i, u := range users {
		obj, ok := u.(map[string]interface{})
		if !ok {
			utils.LogWarn("社員一覧 %d 件目: オブジェクトではないためスキップします", i+1)
			continue
		}
		id, ok := intField(obj, "id")
		if !ok {
			utils.LogWarn("社員一覧 %d 件目: id が無いか整数ではないためスキップします", i+1)
			continue
		}
		name, _ := stringField(obj, "name")
		username, _ := stringField(obj, "username")
		profiles = append(profiles, models.EmployeeProfile{ID: id, Name: name, Username: username})
	}

	return profiles, nil
}
