package services

import "todoprogress/models"

// Aggregate はタスク一覧を集計します。完了タスクのタイトルは取得順を保ちます
func Aggregate(profile models.EmployeeProfile, tasks []models.TaskRecord) models.ProgressResult {
	result := models.ProgressResult{
		Profile:         profile,
		Total:           len(tasks),
		CompletedTitles: []string{},
		Tasks:           make([]models.TaskRecord, len(tasks)),
	}
	copy(result.Tasks, tasks)

	for _, task := range tasks {
		if task.Completed {
			result.CompletedTitles = append(result.CompletedTitles, task.Title)
		}
	}
	result.Completed = len(result.CompletedTitles)

	return result
}

// BulkTasks は集計結果を全社員出力用の行に変換します
func BulkTasks(result models.ProgressResult) []models.BulkTask {
	rows := make([]models.BulkTask, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		rows = append(rows, models.BulkTask{
			Username:  result.Profile.Username,
			Task:      task.Title,
			Completed: task.Completed,
		})
	}
	return rows
}
