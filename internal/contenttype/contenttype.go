package contenttype

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultType は拡張子からもファイル内容からも特定できなかった場合のContent-Type
const DefaultType = "application/octet-stream"

// Resolver はファイル名からContent-Typeを解決する
// 起動時に一度だけ構築し、以降は読み取り専用で全リクエストから共有する
type Resolver struct {
	overrides map[string]string
}

// New は新しいResolverを作成する
// システムのMIMEテーブルはプラットフォームによってJavaScriptの型が
// text/javascript だったり未登録だったりするため、
// ESモジュールをブラウザで読み込めるよう .js と .mjs を
// application/javascript に固定する
func New() *Resolver {
	return &Resolver{
		overrides: map[string]string{
			".js":  "application/javascript",
			".mjs": "application/javascript",
		},
	}
}

// ByName はファイル名からContent-Typeを解決する
// 上書きテーブル → システムのMIMEテーブルの順で照合し、
// どちらにもない場合は空文字列を返す
func (r *Resolver) ByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if ctype, ok := r.overrides[ext]; ok {
		return ctype
	}
	return mime.TypeByExtension(ext)
}

// ByFile はファイル名で解決できない場合にファイル内容から推定する
// 推定にも失敗した場合は DefaultType を返す
func (r *Resolver) ByFile(fsPath string) string {
	if ctype := r.ByName(filepath.Base(fsPath)); ctype != "" {
		return ctype
	}
	mtype, err := mimetype.DetectFile(fsPath)
	if err != nil {
		return DefaultType
	}
	return mtype.String()
}
