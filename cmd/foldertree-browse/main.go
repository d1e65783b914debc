// Package main はフォルダ選択ダイアログでルートを指定するエントリーポイントを提供します
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"FolderTree/internal/infrastructure/filesystem"
	"FolderTree/internal/infrastructure/logging"
	"FolderTree/internal/interface/cli"
	"FolderTree/internal/interface/ui"
	"FolderTree/internal/usecase/tree"
)

func main() {
	logger := logging.NewJSONLogger(os.Stderr, logging.WithMinLevel(logging.LevelWarn))

	scanner := filesystem.NewScanner(filesystem.NewOSFileSystem(), logger)
	renderer := tree.NewRenderer(os.Stdout, scanner, logger)
	app := cli.NewApp(os.Stdin, os.Stdout, scanner, renderer, logger)

	root, err := ui.NewDirectorySelector(scanner).SelectDirectory("Select project folder")
	if errors.Is(err, ui.ErrCancelled) {
		fmt.Println("Cancelled.")
		return
	}
	if err != nil {
		logger.Log(logging.LevelError, "フォルダ選択に失敗", err)
		log.Fatalf("エラー: %v", err)
	}

	app.Show(root)
}
