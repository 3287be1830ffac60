package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"todoprogress/config"
	"todoprogress/models"
	"todoprogress/utils"
)

// Exporter は集計結果をコンソールやファイルに出力します。入力の集計結果は変更しません
type Exporter struct {
	config *config.Config
}

// NewExporter は新しいエクスポーターを作成します
func NewExporter(cfg *config.Config) *Exporter {
	return &Exporter{
		config: cfg,
	}
}

// jsonTask は社員別JSONの1要素です (キー順: task, completed, username)
type jsonTask struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Username  string `json:"username"`
}

// WriteConsole は完了状況のサマリーと完了タスクのタイトルを書き出します
func WriteConsole(w io.Writer, result models.ProgressResult) error {
	if _, err := fmt.Fprintf(w, "Employee %s is done with tasks(%d/%d):\n",
		result.Profile.Name, result.Completed, result.Total); err != nil {
		return fmt.Errorf("コンソール出力エラー: %w", err)
	}
	for _, title := range result.CompletedTitles {
		if _, err := fmt.Fprintf(w, "\t%s\n", title); err != nil {
			return fmt.Errorf("コンソール出力エラー: %w", err)
		}
	}
	return nil
}

// WriteCSV はすべてのタスクを [社員ID, ユーザー名, 完了状態, タイトル] の行として書き出します
func WriteCSV(w io.Writer, result models.ProgressResult) error {
	writer := csv.NewWriter(w)
	for _, row := range taskRows(result) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("行書き込みエラー: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV書き込み完了エラー: %w", err)
	}
	return nil
}

// WriteJSON は {"<社員ID>": [{task, completed, username}, ...]} を書き出します
func WriteJSON(w io.Writer, result models.ProgressResult) error {
	tasks := make([]jsonTask, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, jsonTask{
			Task:      task.Title,
			Completed: task.Completed,
			Username:  result.Profile.Username,
		})
	}

	payload := map[string][]jsonTask{
		strconv.Itoa(result.Profile.ID): tasks,
	}
	return writeJSONPayload(w, payload)
}

// WriteBulkJSON は全社員分の {"<社員ID>": [{username, task, completed}, ...]} を書き出します。
// 社員が1人もいなければ {} になります
func WriteBulkJSON(w io.Writer, bulk models.BulkResult) error {
	payload := make(map[string][]models.BulkTask, len(bulk))
	for id, tasks := range bulk {
		if tasks == nil {
			tasks = []models.BulkTask{}
		}
		payload[strconv.Itoa(id)] = tasks
	}
	return writeJSONPayload(w, payload)
}

// WriteXLSX はCSVと同じ行を "tasks" シートに持つワークブックを書き出します
func WriteXLSX(w io.Writer, result models.ProgressResult) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("tasks")
	if err != nil {
		return fmt.Errorf("シート作成エラー: %w", err)
	}

	for _, record := range taskRows(result) {
		row := sheet.AddRow()
		for _, value := range record {
			row.AddCell().SetString(value)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("XLSX書き込みエラー: %w", err)
	}
	return nil
}

// ExportCSV は <出力先>/<社員ID>.csv を作成します (既存ファイルは上書き)
func (e *Exporter) ExportCSV(result models.ProgressResult) (string, error) {
	path := e.outputPath(strconv.Itoa(result.Profile.ID) + ".csv")
	return path, e.writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, result)
	})
}

// ExportJSON は <出力先>/<社員ID>.json を作成します (既存ファイルは上書き)
func (e *Exporter) ExportJSON(result models.ProgressResult) (string, error) {
	path := e.outputPath(strconv.Itoa(result.Profile.ID) + ".json")
	return path, e.writeFile(path, func(w io.Writer) error {
		return WriteJSON(w, result)
	})
}

// ExportXLSX は <出力先>/<社員ID>.xlsx を作成します (既存ファイルは上書き)
func (e *Exporter) ExportXLSX(result models.ProgressResult) (string, error) {
	path := e.outputPath(strconv.Itoa(result.Profile.ID) + ".xlsx")
	return path, e.writeFile(path, func(w io.Writer) error {
		return WriteXLSX(w, result)
	})
}

// ExportBulkJSON は全社員分のJSONを作成します (既存ファイルは上書き)
func (e *Exporter) ExportBulkJSON(bulk models.BulkResult) (string, error) {
	path := e.outputPath(e.config.BulkOutput)
	return path, e.writeFile(path, func(w io.Writer) error {
		return WriteBulkJSON(w, bulk)
	})
}

func (e *Exporter) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(e.config.OutputDir, name)
}

// writeFile はファイルを作成 (切り詰め) して書き込み、閉じるまでを行います
func (e *Exporter) writeFile(path string, write func(io.Writer) error) error {
	utils.LogInfo("ファイル '%s' を作成します", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("ディレクトリ作成エラー: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ファイル作成エラー: %w", err)
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("ファイルクローズエラー: %w", err)
	}

	utils.LogInfo("ファイル '%s' の書き込みが完了しました", path)
	return nil
}

func writeJSONPayload(w io.Writer, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("JSONエンコードエラー: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("JSON書き込みエラー: %w", err)
	}
	return nil
}

// taskRows はCSV/XLSX共通の行を作ります
func taskRows(result models.ProgressResult) [][]string {
	id := strconv.Itoa(result.Profile.ID)
	rows := make([][]string, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		rows = append(rows, []string{id, result.Profile.Username, boolText(task.Completed), task.Title})
	}
	return rows
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
