package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	restore := captureStdout(t)
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return restore(), err
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "voicequery version")
}

func TestVersionCommand_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "version", "-o", "json")
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "dev", payload["version"])
}

func TestInvalidOutputFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "version", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestTablesCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tables", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tables": []map[string]interface{}{
				{"id": 1, "name": "sales", "columns": []map[string]interface{}{
					{"id": 1, "table_id": 1, "name": "month", "type": "TEXT"},
				}},
			},
		})
	}))
	defer srv.Close()

	out, err := runCommand(t, "tables", "--host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "sales")
	assert.Contains(t, out, "month")
}

func TestAskCommand_Table(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sql":  "SELECT month, total FROM sales",
			"rows": []map[string]interface{}{{"month": "Jan", "total": 100}},
		})
	}))
	defer srv.Close()

	out, err := runCommand(t, "ask", "sales", "by", "month", "--host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT month, total FROM sales")
	assert.Contains(t, out, "Jan")
}

func TestAskCommand_NoQuestion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to ask")
}

func TestAskCommand_VoiceFileOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/voice":
			_ = json.NewEncoder(w).Encode(map[string]string{"text": "show sales"})
		case "/query":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Empty(t, body["query"])
			assert.Equal(t, "show sales", body["voice"])
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"sql":  "SELECT * FROM sales",
				"rows": []map[string]interface{}{{"month": "Jan"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	clip := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(clip, []byte{1, 2, 3}, 0o600))

	out, err := runCommand(t, "ask", "--voice-file", clip, "--host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT * FROM sales")
}

func TestAskCommand_MissingVoiceFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	missing := filepath.Join(t.TempDir(), "nope.wav")
	_, err := runCommand(t, "ask", "--voice-file", missing, "--host", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not transcribe")
}

func TestResultsCommand_Empty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"rows": []interface{}{}})
	}))
	defer srv.Close()

	out, err := runCommand(t, "results", "--host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "(no rows)")
}

func TestConfigProfileRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set-profile", "staging", "--host", "https://staging.example.com")
	require.NoError(t, err)

	_, err = runCommand(t, "config", "use-profile", "staging")
	require.NoError(t, err)

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "current-profile: staging")
	assert.Contains(t, out, "https://staging.example.com")
}
