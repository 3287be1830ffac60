package utils

import "github.com/google/uuid"

// NewRunID はログの突き合わせ用に実行ごとのIDを発行します
func NewRunID() string {
	return uuid.NewString()
}
