package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"todoprogress/api"
	"todoprogress/config"
	"todoprogress/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	return cfg
}

func sampleResult() models.ProgressResult {
	profile := models.EmployeeProfile{ID: 1, Name: "Leanne Graham", Username: "Bret"}
	return Aggregate(profile, []models.TaskRecord{
		{OwnerID: 1, Title: "a", Completed: true},
		{OwnerID: 1, Title: "b, with comma", Completed: false},
	})
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConsole(&buf, sampleResult()))
	assert.Equal(t, "Employee Leanne Graham is done with tasks(1/2):\n\ta\n", buf.String())
}

func TestWriteConsole_Empty(t *testing.T) {
	var buf bytes.Buffer
	result := Aggregate(models.EmployeeProfile{ID: 4, Name: "Nobody"}, nil)
	require.NoError(t, WriteConsole(&buf, result))
	assert.Equal(t, "Employee Nobody is done with tasks(0/0):\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "Bret", "True", "a"},
		{"1", "Bret", "False", "b, with comma"},
	}, rows)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))
	assert.True(t, strings.HasPrefix(buf.String(), `{"1":[{"task":"a","completed":true,"username":"Bret"}`))

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Contains(t, decoded, "1")
	assert.Len(t, decoded["1"], result.Total)
	assert.Equal(t, "b, with comma", decoded["1"][1]["task"])
	assert.Equal(t, false, decoded["1"][1]["completed"])
}

func TestWriteJSON_NoTasks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Aggregate(models.EmployeeProfile{ID: 9, Username: "x"}, nil)))
	assert.Equal(t, `{"9":[]}`, buf.String())
}

func TestWriteBulkJSON(t *testing.T) {
	bulk := models.BulkResult{
		2: {{Username: "b", Task: "t", Completed: true}},
		1: nil,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteBulkJSON(&buf, bulk))
	assert.Equal(t, `{"1":[],"2":[{"username":"b","task":"t","completed":true}]}`, buf.String())
}

func TestWriteBulkJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBulkJSON(&buf, nil))
	assert.Equal(t, `{}`, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleResult()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := file.Sheet["tasks"]
	require.True(t, ok)

	cell, err := sheet.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "False", cell.Value)
	cell, err = sheet.Cell(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "a", cell.Value)
}

func TestExportCSV_OverwritesAndIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	exporter := NewExporter(cfg)
	path := filepath.Join(cfg.OutputDir, "1.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 50)), 0644))

	got, err := exporter.ExportCSV(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, path, got)
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(first), "stale")

	_, err = exporter.ExportCSV(sampleResult())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportJSON_Idempotent(t *testing.T) {
	exporter := NewExporter(testConfig(t))
	path, err := exporter.ExportJSON(sampleResult())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = exporter.ExportJSON(sampleResult())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "1.json", filepath.Base(path))
}

func TestExportBulkJSON_AbsolutePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.BulkOutput = filepath.Join(t.TempDir(), "all.json")

	path, err := NewExporter(cfg).ExportBulkJSON(models.BulkResult{})
	require.NoError(t, err)
	assert.Equal(t, cfg.BulkOutput, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestExport_UnwritablePath(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.OutputDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.OutputDir = filepath.Join(blocker, "sub")

	_, err := NewExporter(cfg).ExportJSON(sampleResult())
	assert.Error(t, err)
}

func TestExport_DoesNotMutateResult(t *testing.T) {
	result := sampleResult()
	before := sampleResult()
	exporter := NewExporter(testConfig(t))

	var buf bytes.Buffer
	require.NoError(t, WriteConsole(&buf, result))
	_, err := exporter.ExportCSV(result)
	require.NoError(t, err)
	_, err = exporter.ExportJSON(result)
	require.NoError(t, err)
	assert.Equal(t, before, result)
}

func TestRun_AllFormatsAgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/1":
			w.Write([]byte(`{"id":1,"name":"Leanne Graham","username":"Bret"}`))
		case "/todos":
			w.Write([]byte(`[{"userId":1,"title":"a","completed":true},{"userId":1,"title":"b","completed":false}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.APIURL = srv.URL
	svc := NewProgressService(cfg, api.NewTodoClient(cfg))

	var out bytes.Buffer
	require.NoError(t, svc.Run(1, FormatAll, &out))
	assert.Equal(t, "Employee Leanne Graham is done with tasks(1/2):\n\ta\n", out.String())
	for _, name := range []string{"1.csv", "1.json", "1.xlsx"} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	out.Reset()
	err := svc.Run(2, FormatConsole, &out)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Empty(t, out.String())

	assert.Error(t, svc.Run(1, "pdf", &out))
}

func TestRunAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users":
			w.Write([]byte(`[{"id":1,"username":"alpha"},{"id":2,"username":"bravo"}]`))
		case r.URL.Path == "/todos" && r.URL.Query().Get("userId") == "1":
			w.Write([]byte(`[{"userId":1,"title":"t","completed":false}]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.APIURL = srv.URL
	path, err := NewProgressService(cfg, api.NewTodoClient(cfg)).RunAll()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"1":[{"username":"alpha","task":"t","completed":false}]}`, string(data))
}
