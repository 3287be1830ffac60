package utils

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUsage はコマンドライン引数が不正な場合に返されます
var ErrUsage = errors.New("引数が不正です")

// ParseEmployeeID は位置引数がちょうど1つの整数であることを確認して社員IDを返します
func ParseEmployeeID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: 社員IDを1つ指定してください (指定数: %d)", ErrUsage, len(args))
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: 社員IDは整数で指定してください: %q", ErrUsage, args[0])
	}

	return id, nil
}

// ExpectNoArgs は位置引数が無いことを確認します
func ExpectNoArgs(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: このコマンドは引数を取りません (指定数: %d)", ErrUsage, len(args))
	}
	return nil
}
