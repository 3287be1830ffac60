package services

import "math"

// DataSource はリモートのタスク管理APIへのアクセスを抽象化します。
// *api.TodoClient がこれを満たします
type DataSource interface {
	GetUser(employeeID int) (map[string]interface{}, error)
	GetUsers() ([]interface{}, error)
	GetTodos(employeeID int) ([]interface{}, error)
}

// JSONの数値は float64 として届く。整数でない値は無効として扱う
func intField(obj map[string]interface{}, key string) (int, bool) {
	v, ok := obj[key].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

func stringField(obj map[string]interface{}, key string) (string, bool) {
	v, ok := obj[key].(string)
	return v, ok
}
