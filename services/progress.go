package services

import (
	"fmt"
	"io"
	"time"

	"todoprogress/config"
	"todoprogress/models"
	"todoprogress/utils"
)

// 出力形式
const (
	FormatConsole = "console"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatXLSX    = "xlsx"
	FormatAll     = "all"
)

// ProgressService は取得・集計・出力のパイプラインを処理します
type ProgressService struct {
	config    *config.Config
	resolver  *EmployeeResolver
	collector *TaskCollector
	exporter  *Exporter
}

// NewProgressService は新しいサービスを作成します
func NewProgressService(cfg *config.Config, source DataSource) *ProgressService {
	return &ProgressService{
		config:    cfg,
		resolver:  NewEmployeeResolver(source),
		collector: NewTaskCollector(source),
		exporter:  NewExporter(cfg),
	}
}

// Progress は社員1名の集計結果を返します。社員を解決できなければタスクは取得しません
func (s *ProgressService) Progress(employeeID int) (models.ProgressResult, error) {
	profile, err := s.resolver.Resolve(employeeID)
	if err != nil {
		return models.ProgressResult{}, err
	}

	tasks, err := s.collector.Collect(employeeID)
	if err != nil {
		return models.ProgressResult{}, err
	}

	result := Aggregate(profile, tasks)
	utils.LogInfo("社員ID %d (%s): %d/%d 件完了", employeeID, profile.Username, result.Completed, result.Total)
	return result, nil
}

// Sweep は全社員のタスクを順番に取得します。タスク取得に失敗した社員は警告を出してスキップします
func (s *ProgressService) Sweep() (models.BulkResult, error) {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "全社員タスク取得")

	runID := utils.NewRunID()

	profiles, err := s.resolver.ResolveAll()
	if err != nil {
		return nil, err
	}
	utils.LogInfo("[%s] 全社員タスク取得を開始します: %d 名", runID, len(profiles))

	bulk := make(models.BulkResult, len(profiles))
	failed := 0
	for _, profile := range profiles {
		tasks, err := s.collector.Collect(profile.ID)
		if err != nil {
			utils.LogWarn("[%s] 社員ID %d をスキップします: %v", runID, profile.ID, err)
			failed++
			continue
		}

		result := Aggregate(profile, tasks)
		bulk[profile.ID] = BulkTasks(result)
	}

	utils.LogInfo("[%s] 全社員タスク取得が完了しました: 成功=%d, 失敗=%d", runID, len(bulk), failed)
	return bulk, nil
}

// Run は社員1名分を指定形式で出力します。console は out に書き出します
func (s *ProgressService) Run(employeeID int, format string, out io.Writer) error {
	switch format {
	case FormatConsole, FormatCSV, FormatJSON, FormatXLSX, FormatAll:
	default:
		return fmt.Errorf("不明な出力形式です: %s", format)
	}

	result, err := s.Progress(employeeID)
	if err != nil {
		return err
	}

	if format == FormatConsole || format == FormatAll {
		if err := WriteConsole(out, result); err != nil {
			return err
		}
	}

	exports := []struct {
		format string
		export func(models.ProgressResult) (string, error)
	}{
		{FormatCSV, s.exporter.ExportCSV},
		{FormatJSON, s.exporter.ExportJSON},
		{FormatXLSX, s.exporter.ExportXLSX},
	}
	for _, e := range exports {
		if format != e.format && format != FormatAll {
			continue
		}
		if _, err := e.export(result); err != nil {
			return fmt.Errorf("%s 出力エラー: %w", e.format, err)
		}
	}

	return nil
}

// RunAll は全社員分を取得して1つのJSONファイルに出力し、そのパスを返します
func (s *ProgressService) RunAll() (string, error) {
	bulk, err := s.Sweep()
	if err != nil {
		return "", err
	}

	path, err := s.exporter.ExportBulkJSON(bulk)
	if err != nil {
		return "", fmt.Errorf("全社員JSON出力エラー: %w", err)
	}
	return path, nil
}
