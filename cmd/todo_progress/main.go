package main

import (
	"flag"
	"fmt"
	"os"

	"todoprogress/api"
	"todoprogress/config"
	"todoprogress/services"
	"todoprogress/utils"
)

func main() {
	// コマンドラインフラグの定義
	apiURL := flag.String("api", "", "データ取得元のURL（指定しない場合は環境変数から取得）")
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

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.SetAPIURL(*apiURL)
	}
	utils.SetLevel(cfg.LogLevel)

	client := api.NewTodoClient(cfg)
	progressService := services.NewProgressService(cfg, client)

	if err := progressService.Run(employeeID, services.FormatConsole, os.Stdout); err != nil {
		utils.LogError("社員ID %d の進捗を取得できませんでした: %v", employeeID, err)
		os.Exit(1)
	}
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
TODO進捗表示ツール

使用方法:
  %s [オプション] <employee_id>

オプション:
  -api URL            データ取得元のURL
  -help               このヘルプを表示する

環境変数:
  TODO_API_URL        データ取得元のURL (デフォルト: https://jsonplaceholder.typicode.com)
  TODO_CONFIG_FILE    YAML設定ファイルのパス (任意)
  LOG_LEVEL           ログレベル info/warn/error/quiet (デフォルト: info)

説明:
  社員の完了タスク数と全タスク数、完了タスクのタイトルを標準出力に表示します。
`, os.Args[0])
}
