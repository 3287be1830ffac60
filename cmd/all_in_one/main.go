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
	format := flag.String("format", services.FormatConsole, "出力形式 (console, csv, json, xlsx, all)")
	allEmployees := flag.Bool("all-employees", false, "全社員のタスクをJSONに出力する")
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

	var employeeID int
	var err error
	if *allEmployees {
		err = utils.ExpectNoArgs(flag.Args())
	} else {
		employeeID, err = utils.ParseEmployeeID(flag.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n使用方法: %s [-format 形式] <employee_id> | %s -all-employees\n", err, os.Args[0], os.Args[0])
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

	utils.LogInfo("TODO進捗ツール (v1.0.0)")
	utils.LogInfo("設定読み込み完了 (API: %s)", cfg.APIURL)

	// 必要なサービスの初期化
	client := api.NewTodoClient(cfg)
	progressService := services.NewProgressService(cfg, client)

	if *allEmployees {
		if _, err := progressService.RunAll(); err != nil {
			utils.LogError("全社員の出力に失敗しました: %v", err)
			os.Exit(1)
		}
	} else if err := progressService.Run(employeeID, *format, os.Stdout); err != nil {
		utils.LogError("社員ID %d の処理に失敗しました: %v", employeeID, err)
		os.Exit(1)
	}

	// 合計実行時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("処理が完了しました。合計実行時間: %s", elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
TODO進捗ツール

使用方法:
  %s [オプション] <employee_id>
  %s -all-employees [オプション]

オプション:
  -format 形式         出力形式 console/csv/json/xlsx/all (デフォルト: console)
  -all-employees      全社員のタスクをJSONに出力する
  -api URL            データ取得元のURL
  -output-dir パス     出力先ディレクトリ
  -help               このヘルプを表示する

環境変数:
  TODO_API_URL        データ取得元のURL (デフォルト: https://jsonplaceholder.typicode.com)
  OUTPUT_DIR          出力先ディレクトリ (デフォルト: .)
  BULK_OUTPUT         全社員JSONのファイル名 (デフォルト: todo_all_employees.json)
  TODO_CONFIG_FILE    YAML設定ファイルのパス (任意)
  LOG_LEVEL           ログレベル info/warn/error/quiet (デフォルト: info)

例:
  # 進捗を表示
  %s 1

  # CSVとJSONとExcelをまとめて出力
  %s -format all 1

  # 全社員分をJSONに出力
  %s -all-employees
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}
