package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"todoprogress/config"
	"todoprogress/utils"
)

// TodoClient はタスク管理APIからのデータ取得を処理します
type TodoClient struct {
	config *config.Config
	client *http.Client
}

// NewTodoClient は新しいクライアントを作成します
func NewTodoClient(cfg *config.Config) *TodoClient {
	return &TodoClient{
		config: cfg,
		client: &http.Client{},
	}
}

// Fetch はリソースに対して1回だけGETを行い、解析済みのJSON (オブジェクトまたは配列) を返します。
// 失敗はすべて *FetchError として返します
func (c *TodoClient) Fetch(resource string, query url.Values) (interface{}, error) {
	body, _, err := c.fetch(resource, query)
	return body, err
}

// FetchObject はJSONオブジェクトを返すリソースを取得します
func (c *TodoClient) FetchObject(resource string, query url.Values) (map[string]interface{}, error) {
	body, status, err := c.fetch(resource, query)
	if err != nil {
		return nil, err
	}
	obj, ok := body.(map[string]interface{})
	if !ok {
		return nil, &FetchError{Resource: resource, StatusCode: status, Err: fmt.Errorf("オブジェクトを期待しましたが配列でした")}
	}
	return obj, nil
}

// FetchArray はJSON配列を返すリソースを取得します
func (c *TodoClient) FetchArray(resource string, query url.Values) ([]interface{}, error) {
	body, status, err := c.fetch(resource, query)
	if err != nil {
		return nil, err
	}
	arr, ok := body.([]interface{})
	if !ok {
		return nil, &FetchError{Resource: resource, StatusCode: status, Err: fmt.Errorf("配列を期待しましたがオブジェクトでした")}
	}
	return arr, nil
}

// fetch は解析済みボディと一緒にHTTPステータスも返します
func (c *TodoClient) fetch(resource string, query url.Values) (interface{}, int, error) {
	endpoint := fmt.Sprintf("%s/%s", c.config.APIURL, strings.TrimLeft(resource, "/"))
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, &FetchError{Resource: resource, Err: fmt.Errorf("リクエスト作成エラー: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &FetchError{Resource: resource, Err: fmt.Errorf("リクエスト送信エラー: %w", err)}
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	if status < 200 || status > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, status, &FetchError{Resource: resource, StatusCode: status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status, &FetchError{Resource: resource, StatusCode: status, Err: fmt.Errorf("レスポンス読み込みエラー: %w", err)}
	}

	// 末尾に余計なデータがあれば Unmarshal がエラーにする
	var body interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, status, &FetchError{Resource: resource, StatusCode: status, Err: fmt.Errorf("レスポンス解析エラー: %w", err)}
	}

	switch body.(type) {
	case map[string]interface{}, []interface{}:
	default:
		return nil, status, &FetchError{Resource: resource, StatusCode: status, Err: fmt.Errorf("レスポンスがオブジェクトでも配列でもありません")}
	}

	utils.LogInfo("%s を取得しました (HTTP %d)", resource, status)
	return body, status, nil
}

// GetUser は社員1名のプロフィールを取得します
func (c *TodoClient) GetUser(employeeID int) (map[string]interface{}, error) {
	return c.FetchObject("users/"+strconv.Itoa(employeeID), nil)
}

// GetUsers は全社員のプロフィールを取得します
func (c *TodoClient) GetUsers() ([]interface{}, error) {
	return c.FetchArray("users", nil)
}

// GetTodos は社員が担当するタスク一覧を取得します
func (c *TodoClient) GetTodos(employeeID int) ([]interface{}, error) {
	query := url.Values{}
	query.Set("userId", strconv.Itoa(employeeID))
	return c.FetchArray("todos", query)
}
