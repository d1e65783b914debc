package tree

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FolderTree/internal/domain/model"
	"FolderTree/internal/infrastructure/filesystem"
)

func render(t *testing.T, fsys fstest.MapFS, root string) (string, error) {
	t.Helper()
	var buf strings.Builder
	scanner := filesystem.NewScanner(filesystem.NewFSAdapter(fsys), nil)
	err := NewRenderer(&buf, scanner, nil).Render(root, "")
	return buf.String(), err
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "隠しファイルを除外する",
			fsys: fstest.MapFS{
				"root/a.txt":   {Data: []byte("a")},
				"root/b.txt":   {Data: []byte("b")},
				"root/.hidden": {Data: []byte("h")},
			},
			want: "├── a.txt\n" +
				"└── b.txt\n",
		},
		{
			name: "単一のサブディレクトリ",
			fsys: fstest.MapFS{
				"root/sub/x.txt": {Data: []byte("x")},
			},
			want: "└── sub\n" +
				"    └── x.txt\n",
		},
		{
			name: "空のディレクトリ",
			fsys: fstest.MapFS{
				"root": {Mode: fs.ModeDir | 0755},
			},
			want: "",
		},
		{
			name: "入れ子のディレクトリ",
			fsys: fstest.MapFS{
				"root/README.md":            {},
				"root/cmd/app/main.go":      {},
				"root/internal/a/a.go":      {},
				"root/internal/a/a_test.go": {},
				"root/internal/b/b.go":      {},
				"root/internal/.cache/x":    {},
				"root/.git/HEAD":            {},
			},
			want: "├── README.md\n" +
				"├── cmd\n" +
				"│   └── app\n" +
				"│       └── main.go\n" +
				"└── internal\n" +
				"    ├── a\n" +
				"    │   ├── a.go\n" +
				"    │   └── a_test.go\n" +
				"    └── b\n" +
				"        └── b.go\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(t, tt.fsys, "root")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Render_Prefix(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a": {},
		"root/b": {},
	}
	var buf strings.Builder
	scanner := filesystem.NewScanner(filesystem.NewFSAdapter(fsys), nil)

	require.NoError(t, NewRenderer(&buf, scanner, nil).Render("root", ">>"))
	assert.Equal(t, ">>├── a\n>>└── b\n", buf.String())
}

func TestRenderer_Render_Idempotent(t *testing.T) {
	fsys := fstest.MapFS{
		"root/z/1":   {},
		"root/y/2/3": {},
		"root/x":     {},
	}

	first, err := render(t, fsys, "root")
	require.NoError(t, err)
	second, err := render(t, fsys, "root")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderer_Render_Invariants(t *testing.T) {
	fsys := fstest.MapFS{
		"root/b/d/f":  {},
		"root/b/d/e":  {},
		"root/b/c":    {},
		"root/a":      {},
		"root/c/.x/y": {},
		"root/c/z":    {},
	}

	out, err := render(t, fsys, "root")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)

	for _, line := range lines {
		assert.NotContains(t, line, "── .", "隠しエントリが出力されている: %q", line)

		// 接続記号の前はインデント単位の繰り返しであること
		idx := strings.LastIndex(line, BranchConnector)
		if last := strings.LastIndex(line, LastConnector); last > idx {
			idx = last
		}
		require.GreaterOrEqual(t, idx, 0)
		indent := line[:idx]
		rest := strings.NewReplacer(BranchExtension, "", LastExtension, "").Replace(indent)
		assert.Empty(t, rest, "不正なインデント: %q", line)
	}
}

type failingLister struct {
	filesystem.DirectoryLister
	fail map[string]error
}

func (f *failingLister) List(dir string) ([]model.Entry, error) {
	if err, ok := f.fail[dir]; ok {
		return nil, err
	}
	return f.DirectoryLister.List(dir)
}

type mockLogger struct {
	levels []string
}

func (m *mockLogger) Log(level, message string, err error) {
	m.levels = append(m.levels, level)
}

func TestRenderer_Render_UnreadableSubtree(t *testing.T) {
	fsys := fstest.MapFS{
		"root/locked/secret.txt": {},
		"root/open/file.txt":     {},
		"root/z.txt":             {},
	}
	errDenied := errors.New("permission denied")
	lister := &failingLister{
		DirectoryLister: filesystem.NewScanner(filesystem.NewFSAdapter(fsys), nil),
		fail:            map[string]error{"root/locked": errDenied},
	}
	logger := &mockLogger{}

	var buf strings.Builder
	err := NewRenderer(&buf, lister, logger).Render("root", "")

	want := "├── locked\n" +
		"├── open\n" +
		"│   └── file.txt\n" +
		"└── z.txt\n"
	assert.Equal(t, want, buf.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDenied)
	assert.Equal(t, []string{"WARN"}, logger.levels)
}
