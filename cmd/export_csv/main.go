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
	outputDir := flag.String("output-dir", "", "出力先ディレクトリ（指定しない場合は環境変数から取得）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	employeeID, err := utils.ParseEmployeeID(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n使用方法: %s <employee_id>\n", err, os.Args[0])
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
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	utils.SetLevel(cfg.LogLevel)

	utils.LogInfo("TODO CSV出力ツール")

	client := api.NewTodoClient(cfg)
	progressService := services.NewProgressService(cfg, client)

	if err := progressService.Run(employeeID, services.FormatCSV, os.Stdout); err != nil {
		utils.LogError("社員ID %d の出力に失敗しました: %v", employeeID, err)
		os.Exit(1)
	}

	// 処理時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("出力が完了しました。処理時間: %s", elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
TODO CSV出力ツール

使用方法:
  %s [オプション] <employee_id>

オプション:
  -api URL            データ取得元のURL
  -output-dir パス     出力先ディレクトリ
  -help               このヘルプを表示する

環境変数:
  TODO_API_URL        データ取得元のURL (デフォルト: https://jsonplaceholder.typicode.com)
  OUTPUT_DIR          出力先ディレクトリ (デフォルト: .)
  TODO_CONFIG_FILE    YAML設定ファイルのパス (任意)
  LOG_LEVEL           ログレベル info/warn/error/quiet (デフォルト: info)

説明:
  社員の全タスクを <employee_id>.csv に出力します。
  列: 社員ID, ユーザー名, 完了状態 (True/False), タイトル。既存ファイルは上書きされます。
`, os.Args[0])
}
