// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"FolderTree/internal/domain/model"
	"FolderTree/internal/infrastructure/logging"
)

var (
	// ErrEmptyPath はパスが指定されていないことを示します
	ErrEmptyPath = errors.New("ディレクトリパスが指定されていません")
	// ErrNotFound はパスが存在しないことを示します
	ErrNotFound = errors.New("ディレクトリが存在しません")
	// ErrNotDirectory はパスがディレクトリではないことを示します
	ErrNotDirectory = errors.New("指定されたパスはディレクトリではありません")
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectoryLister はディレクトリ直下の表示対象エントリを列挙するインターフェースです
type DirectoryLister interface {
	List(dir string) ([]model.Entry, error)
}

// FileSystemScanner は検証と列挙の両方を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	DirectoryLister
}

// Scanner はファイルシステムを走査するための構造体です
type Scanner struct {
	fsys   FileSystem
	logger logging.Logger
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(fsys FileSystem, logger logging.Logger) *Scanner {
	if fsys == nil {
		fsys = NewOSFileSystem()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Scanner{
		fsys:   fsys,
		logger: logger,
	}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します。
// 存在確認はシンボリックリンクを辿ります。
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := s.fsys.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return nil
}

// List はディレクトリ直下の要素を列挙し、隠しエントリを除外して名前の昇順で返します
func (s *Scanner) List(dir string) ([]model.Entry, error) {
	names, err := s.fsys.ReadDirNames(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' の読み込みに失敗しました: %w", dir, err)
	}

	visible := names[:0]
	for _, name := range names {
		if model.IsHiddenName(name) {
			continue
		}
		visible = append(visible, name)
	}
	sort.Strings(visible)

	entries := make([]model.Entry, 0, len(visible))
	for _, name := range visible {
		entry := model.Entry{
			Name: name,
			Path: s.fsys.Join(dir, name),
		}

		info, err := s.fsys.Lstat(entry.Path)
		if err != nil {
			// 列挙後に消えた要素はファイルとして扱う
			s.logger.Log(logging.LevelWarn, fmt.Sprintf("パス '%s' の情報取得に失敗", entry.Path), err)
		} else {
			entry.IsSymlink = info.Mode()&fs.ModeSymlink != 0
			entry.IsDir = info.IsDir()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
