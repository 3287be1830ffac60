package services

import (
	"errors"
	"io"
	"os"
	"testing"

	"todoprogress/api"
	"todoprogress/utils"
)

// fakeSource はテスト用の DataSource です
type fakeSource struct {
	users     map[int]map[string]interface{}
	userList  []interface{}
	todos     map[int][]interface{}
	userErr   map[int]error
	todoErr   map[int]error
	listErr   error
	todoCalls []int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		users:   map[int]map[string]interface{}{},
		todos:   map[int][]interface{}{},
		userErr: map[int]error{},
		todoErr: map[int]error{},
	}
}

func (f *fakeSource) GetUser(id int) (map[string]interface{}, error) {
	if err := f.userErr[id]; err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, &api.FetchError{Resource: "users", StatusCode: 404}
	}
	return u, nil
}

func (f *fakeSource) GetUsers() ([]interface{}, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.userList, nil
}

func (f *fakeSource) GetTodos(id int) ([]interface{}, error) {
	f.todoCalls = append(f.todoCalls, id)
	if err := f.todoErr[id]; err != nil {
		return nil, err
	}
	return f.todos[id], nil
}

func (f *fakeSource) addUser(id int, name, username string) {
	u := map[string]interface{}{"id": float64(id), "name": name, "username": username}
	f.users[id] = u
	f.userList = append(f.userList, u)
}

func todo(owner int, title string, completed bool) map[string]interface{} {
	return map[string]interface{}{"userId": float64(owner), "title": title, "completed": completed}
}

var errBoom = errors.New("boom")

func TestMain(m *testing.M) {
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}
