// Package cli は対話形式のコンソール操作を提供します
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"FolderTree/internal/infrastructure/filesystem"
	"FolderTree/internal/infrastructure/logging"
)

// 画面に表示する文言
const (
	Prompt            = "Enter project folder path: "
	MsgFolderNotFound = "❌ Folder not found."
	MsgNotAFolder     = "❌ Not a folder."
	HeaderFormat      = "\n📁 Folder tree for: %s\n\n"
	MsgUnreadable     = "\n⚠️  Some folders could not be read:"
)

// TreeRenderer はツリーを描画するインターフェースです
type TreeRenderer interface {
	Render(dir, prefix string) error
}

// App は入力と出力を受け取ってツリー表示の一連の処理を行います
type App struct {
	in        *bufio.Reader
	out       io.Writer
	validator filesystem.DirectoryValidator
	renderer  TreeRenderer
	logger    logging.Logger
}

// NewApp は新しい App インスタンスを作成します
func NewApp(in io.Reader, out io.Writer, validator filesystem.DirectoryValidator, renderer TreeRenderer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		in:        bufio.NewReader(in),
		out:       out,
		validator: validator,
		renderer:  renderer,
		logger:    logger,
	}
}

// Run はフォルダパスを入力させ、そのツリーを表示します。
// 入力の読み込みに失敗した場合のみエラーを返します。
func (a *App) Run() error {
	root, err := a.ReadPath()
	if err != nil {
		return err
	}
	a.Show(root)
	return nil
}

// ReadPath はプロンプトを表示して1行読み込み、前後の空白を取り除いて返します
func (a *App) ReadPath() (string, error) {
	fmt.Fprint(a.out, Prompt)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("入力の読み込みに失敗しました: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Show は root を検証し、ヘッダーとツリーを出力します。
// 読み込めなかったフォルダがあれば、ツリーの後に一覧を表示します。
func (a *App) Show(root string) {
	if err := a.validator.ValidateDirectoryPath(root); err != nil {
		a.logger.Log(logging.LevelInfo, fmt.Sprintf("無効なパスが入力されました: '%s'", root), err)
		if errors.Is(err, filesystem.ErrNotDirectory) {
			fmt.Fprintln(a.out, MsgNotAFolder)
		} else {
			fmt.Fprintln(a.out, MsgFolderNotFound)
		}
		return
	}

	fmt.Fprintf(a.out, HeaderFormat, root)

	if err := a.renderer.Render(root, ""); err != nil {
		a.logger.Log(logging.LevelWarn, "一部のフォルダを読み込めませんでした", err)
		a.reportUnreadable(err)
	}
}

func (a *App) reportUnreadable(err error) {
	fmt.Fprintln(a.out, MsgUnreadable)

	errs := []error{err}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		errs = merr.WrappedErrors()
	}
	for _, e := range errs {
		fmt.Fprintf(a.out, "  - %v\n", e)
	}
}
