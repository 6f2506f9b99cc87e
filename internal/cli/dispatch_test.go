package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-todo-cli/internal/cli"
	"github.com/tiwariParth/go-todo-cli/internal/config"
	"github.com/tiwariParth/go-todo-cli/internal/exitcode"
	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/storage/memory"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
}

// testFactory creates a store factory that always returns store.
func testFactory(store storage.Storage) cli.StoreFactory {
	return func(cfg *config.Config, logger *log.Logger) storage.Storage {
		return store
	}
}

type harness struct {
	store      *memory.MemoryStore
	dispatcher *cli.Dispatcher
}

func newHarness(tasks ...models.Task) *harness {
	store := memory.NewMemoryStore()
	if len(tasks) > 0 {
		store = memory.NewMemoryStoreWith(tasks...)
	}
	return &harness{
		store:      store,
		dispatcher: cli.NewDispatcher(testFactory(store), fixedClock),
	}
}

func (h *harness) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := h.dispatcher.Run(context.Background(), append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (h *harness) tasks(t *testing.T) []models.Task {
	t.Helper()
	tasks, err := h.store.Load(context.Background())
	require.NoError(t, err)
	return tasks
}

func TestDispatcher_NoFlagsPrintsHelp(t *testing.T) {
	h := newHarness()

	code, stdout, stderr := h.run(t)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(stdout, "usage: todo"))
	for _, want := range []string{
		"Command-line Todo List App",
		"Task Management:",
		"List Options:",
		"Status Management:",
		"-a, --add TASK",
		"-u, --update ID,TASK",
		"-lt, --list-todo",
		"-s, --status ID,CODE",
		"1=ToDo, 2=InProgress, 3=Done",
	} {
		assert.Contains(t, stdout, want)
	}
	assert.Zero(t, h.store.Saves())
}

func TestDispatcher_HelpFlag(t *testing.T) {
	h := newHarness()

	code, stdout, _ := h.run(t, "-h")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stdout, "show this help message and exit")
}

func TestDispatcher_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "todo: error: flag provided but not defined: -bogus\n"},
		{"missing value", []string{"--add"}, "todo: error: flag needs an argument: -add\n"},
		{"stray argument", []string{"-a", "Buy", "milk"}, "todo: error: unrecognized arguments: milk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			code, stdout, stderr := h.run(t, tt.args...)

			assert.Equal(t, exitcode.Usage, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "usage: todo"))
			assert.True(t, strings.HasSuffix(stderr, tt.want), stderr)
			assert.Zero(t, h.store.Saves())
		})
	}
}

func TestDispatcher_Add(t *testing.T) {
	h := newHarness()

	code, stdout, stderr := h.run(t, "-a", "Buy milk")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "Task added: Buy milk\n", stdout)

	tasks := h.tasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.NewTask(1, "Buy milk", fixedClock()), tasks[0])
}

func TestDispatcher_ValidationExitsZero(t *testing.T) {
	absent := func(t *testing.T) *harness { return newHarness() }
	empty := func(t *testing.T) *harness {
		h := newHarness()
		require.NoError(t, h.store.Save(context.Background(), nil))
		return h
	}
	seeded := func(t *testing.T) *harness {
		return newHarness(models.NewTask(1, "Buy milk", fixedClock()))
	}

	tests := []struct {
		name  string
		setup func(*testing.T) *harness
		args  []string
		want  string
	}{
		{"list without store", absent, []string{"-l"}, "No tasks available\n"},
		{"delete without store", absent, []string{"-d", "1"}, "No tasks available\n"},
		{"list empty store", empty, []string{"-l"}, "Task list is empty\n"},
		{"delete not integer", seeded, []string{"-d", "abc"}, "Error: Task number must be an integer\n"},
		{"delete out of range", seeded, []string{"-d", "99"}, "Error: Task number 99 does not exist\n"},
		{"update without comma", seeded, []string{"-u", "1 Walk cat"}, "Error: Update format should be 'ID,TASK'\n"},
		{"status without comma", seeded, []string{"-s", "13"}, "Error: Status format should be 'ID,STATUS'\n"},
		{"status bad code", seeded, []string{"-s", "1,7"}, "Error: Invalid status value. Use 1=ToDo, 2=InProgress, 3=Done\n"},
		{"complete out of range", seeded, []string{"-c", "0"}, "Error: Task number 0 does not exist\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.setup(t)
			saves := h.store.Saves()

			code, stdout, stderr := h.run(t, tt.args...)

			assert.Equal(t, exitcode.Success, code)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
			assert.Equal(t, saves, h.store.Saves())
		})
	}
}

func TestDispatcher_FormatCheckedBeforeStore(t *testing.T) {
	h := newHarness()

	_, stdout, _ := h.run(t, "-u", "no comma")

	assert.Equal(t, "Error: Update format should be 'ID,TASK'\n", stdout)
}

func TestDispatcher_ListFilters(t *testing.T) {
	ts := fixedClock()
	h := newHarness(
		models.Task{ID: 1, Description: "Buy milk", Status: models.Done, LastModified: models.Timestamp{Time: ts}},
		models.Task{ID: 2, Description: "Walk dog", Status: models.InProgress, LastModified: models.Timestamp{Time: ts}},
		models.Task{ID: 3, Description: "Read book", Status: models.ToDo, LastModified: models.Timestamp{Time: ts}},
	)

	tests := []struct {
		flag    string
		title   string
		include []string
		exclude []string
	}{
		{"-l", "Tasks - All", []string{"Buy milk", "Walk dog", "Read book"}, nil},
		{"-lt", "Tasks - ToDo", []string{"Read book"}, []string{"Buy milk", "Walk dog"}},
		{"-lp", "Tasks - InProgress", []string{"Walk dog"}, []string{"Buy milk", "Read book"}},
		{"-ld", "Tasks - Done", []string{"Buy milk"}, []string{"Walk dog", "Read book"}},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			code, stdout, _ := h.run(t, tt.flag)

			assert.Equal(t, exitcode.Success, code)
			assert.Contains(t, stdout, tt.title)
			for _, s := range tt.include {
				assert.Contains(t, stdout, s)
			}
			for _, s := range tt.exclude {
				assert.NotContains(t, stdout, s)
			}
		})
	}
	assert.Zero(t, h.store.Saves())
}

func TestDispatcher_Scenario(t *testing.T) {
	h := newHarness()

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"-a", "Buy milk"}, "Task added: Buy milk\n"},
		{[]string{"--add", "Walk dog"}, "Task added: Walk dog\n"},
		{[]string{"-d", "1"}, "Deleted task 1: Buy milk\n"},
		{[]string{"-u", "1,Walk cat"}, "Updated task 1: Walk cat\n"},
		{[]string{"-p", "1"}, "Updated task 1 status: ToDo → InProgress\n"},
		{[]string{"-s", "1,3"}, "Updated task 1 status: InProgress → Done\n"},
	}
	for _, step := range steps {
		code, stdout, stderr := h.run(t, step.args...)
		require.Equal(t, exitcode.Success, code)
		require.Empty(t, stderr)
		require.Equal(t, step.want, stdout)
	}

	tasks := h.tasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
	assert.Equal(t, "Walk cat", tasks[0].Description)
	assert.Equal(t, models.Done, tasks[0].Status)
}

// failingStore loads fine and fails every save.
type failingStore struct {
	*memory.MemoryStore
}

func (f failingStore) Save(ctx context.Context, tasks []models.Task) error {
	return errors.New("disk full")
}

func TestDispatcher_UnexpectedFailure(t *testing.T) {
	store := failingStore{memory.NewMemoryStore()}
	d := cli.NewDispatcher(testFactory(store), fixedClock)

	var stdout, stderr bytes.Buffer
	code := d.Run(context.Background(), []string{"-a", "Buy milk"}, &stdout, &stderr)

	assert.Equal(t, exitcode.Failure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "operation failed")
	assert.Contains(t, stderr.String(), "disk full")
}

func TestDispatcher_DebugLogging(t *testing.T) {
	h := newHarness()

	code, _, stderr := h.run(t, "--debug", "-a", "Buy milk")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "running operation")
	assert.Contains(t, stderr, "op=add")
}
