// package model はドメインモデルを定義します
package model

import "strings"

// HiddenPrefix は隠しエントリを示す名前の先頭文字です
const HiddenPrefix = "."

// Entry はディレクトリ内の要素（ファイルまたはディレクトリ）を表します
type Entry struct {
	// Name は親ディレクトリ内での要素名を表します
	Name string
	// Path は親パスと Name を結合したパスを表します
	Path string
	// IsDir はディレクトリであるかどうかを示します（シンボリックリンクは辿りません）
	IsDir bool
	// IsSymlink はシンボリックリンクであるかどうかを示します
	IsSymlink bool
}

// IsHidden は名前がドットで始まる隠しエントリかどうかを返します
func (e Entry) IsHidden() bool {
	return IsHiddenName(e.Name)
}

// IsHiddenName は名前が隠しエントリのものかどうかを返します
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}
