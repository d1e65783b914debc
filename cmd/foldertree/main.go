// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"log"
	"os"

	"FolderTree/internal/infrastructure/filesystem"
	"FolderTree/internal/infrastructure/logging"
	"FolderTree/internal/interface/cli"
	"FolderTree/internal/usecase/tree"
)

func main() {
	// 標準出力はツリー専用のため、ログは標準エラーへ警告以上のみ出力する
	logger := logging.NewJSONLogger(os.Stderr, logging.WithMinLevel(logging.LevelWarn))

	scanner := filesystem.NewScanner(filesystem.NewOSFileSystem(), logger)
	renderer := tree.NewRenderer(os.Stdout, scanner, logger)
	app := cli.NewApp(os.Stdin, os.Stdout, scanner, renderer, logger)

	if err := app.Run(); err != nil {
		logger.Log(logging.LevelError, "入力の読み込みに失敗", err)
		log.Fatalf("エラー: %v", err)
	}
}
