package services

import (
	"fmt"

	"todoprogress/models"
	"todoprogress/utils"
)

// CollectionError はタスク一覧の取得失敗です。取得エラーをそのまま保持します
type CollectionError struct {
	EmployeeID int
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("社員ID %d のタスク取得に失敗しました: %v", e.EmployeeID, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// TaskCollector は社員のタスク一覧を取得します
type TaskCollector struct {
	source DataSource
}

// NewTaskCollector は新しいコレクタを作成します
func NewTaskCollector(source DataSource) *TaskCollector {
	return &TaskCollector{source: source}
}

// Collect は社員が担当するタスクを取得順に返します。
// title/completed が欠けた項目は空文字/false として扱います
func (c *TaskCollector) Collect(employeeID int) ([]models.TaskRecord, error) {
	items, err := c.source.GetTodos(employeeID)
	if err != nil {
		return nil, &CollectionError{EmployeeID: employeeID, Err: err}
	}

	tasks := make([]models.TaskRecord, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			utils.LogWarn("社員ID %d: タスク %d 件目がオブジェクトではないためスキップします", employeeID, i+1)
			continue
		}

		if raw, present := obj["userId"]; present && raw != nil {
			owner, ok := intField(obj, "userId")
			if !ok || owner != employeeID {
				utils.LogWarn("社員ID %d: タスク %d 件目の担当者 %v が一致しないためスキップします", employeeID, i+1, raw)
				continue
			}
		}

		title, _ := stringField(obj, "title")
		completed, _ := obj["completed"].(bool)

		tasks = append(tasks, models.TaskRecord{
			OwnerID:   employeeID,
			Title:     title,
			Completed: completed,
		})
	}

	return tasks, nil
}
