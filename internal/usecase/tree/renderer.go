// Package tree はフォルダ構成をツリー形式で描画する機能を提供します
package tree

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"FolderTree/internal/infrastructure/filesystem"
	"FolderTree/internal/infrastructure/logging"
)

// 接続記号とインデント
const (
	BranchConnector = "├── "
	LastConnector   = "└── "
	BranchExtension = "│   "
	LastExtension   = "    "
)

// Renderer はディレクトリを再帰的に走査し、ツリーを書き出します
type Renderer struct {
	writer io.Writer
	lister filesystem.DirectoryLister
	logger logging.Logger
}

// NewRenderer は新しい Renderer インスタンスを作成します
func NewRenderer(writer io.Writer, lister filesystem.DirectoryLister, logger logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Renderer{
		writer: writer,
		lister: lister,
		logger: logger,
	}
}

// Render は dir 以下の要素を1行ずつ prefix を付けて書き出します。
// 読み込めないディレクトリは行のみ出力して中身をスキップし、
// そのエラーをまとめて返します。
func (r *Renderer) Render(dir, prefix string) error {
	var errs *multierror.Error
	r.render(dir, prefix, &errs)
	return errs.ErrorOrNil()
}

func (r *Renderer) render(dir, prefix string, errs **multierror.Error) {
	entries, err := r.lister.List(dir)
	if err != nil {
		r.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' をスキップ", dir), err)
		*errs = multierror.Append(*errs, err)
		return
	}

	for i, entry := range entries {
		connector, extension := BranchConnector, BranchExtension
		if i == len(entries)-1 {
			connector, extension = LastConnector, LastExtension
		}

		fmt.Fprintln(r.writer, prefix+connector+entry.Name)

		if entry.IsDir {
			r.render(entry.Path, prefix+extension, errs)
		}
	}
}
