package models

// EmployeeProfile は社員のプロフィールを表します
type EmployeeProfile struct {
	ID       int
	Name     string
	Username string
}

// TaskRecord は社員に割り当てられた1件のタスクを表します
type TaskRecord struct {
	OwnerID   int
	Title     string
	Completed bool
}

// ProgressResult は1人の社員のタスク集計結果です。生成後に変更してはいけません
type ProgressResult struct {
	Profile         EmployeeProfile
	Total           int
	Completed       int
	CompletedTitles []string
	// Tasks は取得順のすべてのタスク (CSV/JSON出力用)
	Tasks []TaskRecord
}

// BulkTask は全社員出力の1行を表します
type BulkTask struct {
	Username  string `json:"username"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// BulkResult は社員ID → タスク一覧のマッピングです
type BulkResult map[int][]BulkTask
