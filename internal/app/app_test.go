package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-todo-cli/internal/exitcode"
)

type storedTask struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	LastModified string `json:"lastModified"`
}

func run(t *testing.T, path string, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--no-color", "--file", path}, args...)

	code := NewTodoApp().Run(context.Background(), args, &stdout, &stderr)
	require.Equal(t, exitcode.Success, code, stderr.String())
	require.Empty(t, stderr.String())
	return stdout.String()
}

func readFile(t *testing.T, path string) []storedTask {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var tasks []storedTask
	require.NoError(t, json.Unmarshal(data, &tasks))
	return tasks
}

func TestTodoApp_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	assert.Equal(t, "No tasks available\n", run(t, path, "-l"))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "listing must not create the file")

	run(t, path, "-a", "Buy milk")
	run(t, path, "-a", "Walk dog")
	tasks := readFile(t, path)
	require.Len(t, tasks, 2)
	assert.Equal(t, 2, tasks[1].ID)
	assert.Equal(t, "ToDo", tasks[1].Status)
	assert.NotEmpty(t, tasks[1].LastModified)

	assert.Equal(t, "Error: Task number 99 does not exist\n", run(t, path, "-d", "99"))
	assert.Len(t, readFile(t, path), 2)

	run(t, path, "-d", "1")
	run(t, path, "-u", "1,Walk cat, then nap")
	run(t, path, "-s", "1,3")

	tasks = readFile(t, path)
	require.Len(t, tasks, 1)
	assert.Equal(t, storedTask{
		ID:           2,
		Description:  "Walk cat, then nap",
		Status:       "Done",
		LastModified: tasks[0].LastModified,
	}, tasks[0])

	out := run(t, path, "-ld")
	assert.Contains(t, out, "Tasks - Done")
	assert.Contains(t, out, "Walk cat, then nap")
}

func TestTodoApp_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var stdout, stderr bytes.Buffer
	code := NewTodoApp().Run(context.Background(), []string{"--file", path, "-l"}, &stdout, &stderr)

	assert.Equal(t, exitcode.Failure, code)
	assert.Contains(t, stderr.String(), "failed to unmarshal")
}
