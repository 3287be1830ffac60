package api

import "fmt"

// FetchError はリモート取得の失敗 (HTTPステータス・通信・解析) を表します
type FetchError struct {
	Resource   string
	StatusCode int // HTTP応答が無かった場合は 0
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("%s の取得に失敗しました: HTTP %d", e.Resource, e.StatusCode)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s の取得に失敗しました: HTTP %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s の取得に失敗しました: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
