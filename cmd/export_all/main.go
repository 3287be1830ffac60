package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"todoprogress/api"
	"todoprogress/config"
	"todoprogress/services"
	"todoprogress/utils"
)

func main() {
	// コマンドラインフラグの定義
	apiURL := flag.String("api", "", "データ取得元のURL（指定しない場合は環境変数から取得）")
	output := flag.String("output", "", "出力するJSONファイル（指定しない場合は環境変数から取得）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	if err := utils.ExpectNoArgs(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n使用方法: %s [オプション]\n", err, os.Args[0])
		os.Exit(1)
	}

	// 開始時間の記録
	startTime := time.Now()

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインで指定された場合、設定を上書き
	if *apiURL != "" {
		cfg.SetAPIURL(*apiURL)
	}
	if *output != "" {
		cfg.BulkOutput = *output
	}
	utils.SetLevel(cfg.LogLevel)

	utils.LogInfo("全社員TODO JSON出力ツール")

	client := api.NewTodoClient(cfg)
	progressService := services.NewProgressService(cfg, client)

	path, err := progressService.RunAll()
	if err != nil {
		utils.LogError("全社員の出力に失敗しました: %v", err)
		os.Exit(1)
	}

	// 処理時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("%s への出力が完了しました。処理時間: %s", path, elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
全社員TODO JSON出力ツール

使用方法:
  %s [オプション]

オプション:
  -api URL            データ取得元のURL
  -output ファイル     出力するJSONファイル
  -help               このヘルプを表示する

環境変数:
  TODO_API_URL        データ取得元のURL (デフォルト: https://jsonplaceholder.typicode.com)
  OUTPUT_DIR          出力先ディレクトリ (デフォルト: .)
  BULK_OUTPUT         出力するJSONファイル名 (デフォルト: todo_all_employees.json)
  TODO_CONFIG_FILE    YAML設定ファイルのパス (任意)
  LOG_LEVEL           ログレベル info/warn/error/quiet (デフォルト: info)

説明:
  全社員のタスクを1つのJSONファイルに出力します。
  形式: {"<employee_id>": [{"username", "task", "completed"}, ...], ...}
  タスクを取得できなかった社員は警告を出して出力から除外します。
`, os.Args[0])
}
