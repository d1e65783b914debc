package filesystem

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// FileSystem はツリー描画が利用するファイルシステム操作を抽象化したインターフェースです
type FileSystem interface {
	// ReadDirNames はディレクトリ直下の要素名を返します（順序は不定）
	ReadDirNames(dir string) ([]string, error)
	// Join は親パスと要素名を結合します
	Join(parent, name string) string
	// Stat はシンボリックリンクを辿って情報を取得します
	Stat(name string) (fs.FileInfo, error)
	// Lstat はシンボリックリンクを辿らずに情報を取得します
	Lstat(name string) (fs.FileInfo, error)
}

// OSFileSystem はホストのファイルシステムを利用する FileSystem の実装です
type OSFileSystem struct{}

// NewOSFileSystem は新しい OSFileSystem インスタンスを作成します
func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

func (OSFileSystem) ReadDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

func (OSFileSystem) Join(parent, name string) string {
	return filepath.Join(parent, name)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OSFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// FSAdapter は io/fs.FS を FileSystem として扱うためのアダプタです。
// パスは io/fs の規則（スラッシュ区切り、ルートは "."）に従います。
type FSAdapter struct {
	fsys fs.FS
}

// NewFSAdapter は新しい FSAdapter インスタンスを作成します
func NewFSAdapter(fsys fs.FS) *FSAdapter {
	return &FSAdapter{fsys: fsys}
}

func (a *FSAdapter) ReadDirNames(dir string) ([]string, error) {
	dirEntries, err := fs.ReadDir(a.fsys, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, d := range dirEntries {
		names = append(names, d.Name())
	}
	return names, nil
}

func (a *FSAdapter) Join(parent, name string) string {
	return path.Join(parent, name)
}

func (a *FSAdapter) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(a.fsys, name)
}

// Lstat は io/fs にシンボリックリンクの概念がないため Stat と同じ結果を返します
func (a *FSAdapter) Lstat(name string) (fs.FileInfo, error) {
	return fs.Stat(a.fsys, name)
}
