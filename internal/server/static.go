package server

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"haishin/internal/contenttype"
)

// staticHandler は配信ルート配下の静的ファイルを配信するハンドラ
// 通常ファイルはContent-Typeを解決して自前で配信し、
// ディレクトリ一覧・リダイレクト・404/403・パス正規化は
// http.FileServer の既定動作をそのまま使う
type staticHandler struct {
	root       string
	resolver   *contenttype.Resolver
	fileServer http.Handler
}

// newStaticHandler は新しいstaticHandlerを作成する
// resolver は起動時に構築された読み取り専用のテーブルで、
// 全リクエストゴルーチンから共有される
func newStaticHandler(root string, resolver *contenttype.Resolver) *staticHandler {
	return &staticHandler{
		root:       root,
		resolver:   resolver,
		fileServer: http.FileServer(http.Dir(root)),
	}
}

// ServeHTTP はHTTPリクエストを処理する
func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// 通常ファイルは自前で配信する
	// http.FileServer は /index.html で終わるパスを ./ にリダイレクトする
	// 特例を持つため、ファイル名そのままのパスでも本体を返せるようにする
	if fsPath, ok := h.localPath(r.URL.Path); ok {
		h.serveFile(w, r, fsPath)
		return
	}

	// ディレクトリ・不在・アクセス不可は http.FileServer の既定動作に委譲する
	h.fileServer.ServeHTTP(w, r)
}

// serveFile は通常ファイルを1つ配信する
// Content-Typeを先に設定しておくと http.ServeContent の推定より優先される
func (h *staticHandler) serveFile(w http.ResponseWriter, r *http.Request, fsPath string) {
	f, err := os.Open(fsPath)
	if err != nil {
		if os.IsPermission(err) {
			http.Error(w, "403 Forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "500 internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.resolver.ByFile(fsPath))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// localPath はリクエストパスを配信ルート配下のファイルパスに解決する
// 通常ファイルを指す場合のみ解決したパスを返す
// 末尾スラッシュつきのパスはディレクトリ扱いなので解決しない
func (h *staticHandler) localPath(urlPath string) (string, bool) {
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		return "", false
	}
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}
	fsPath := filepath.Join(h.root, filepath.FromSlash(path.Clean(urlPath)))
	info, err := os.Stat(fsPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return fsPath, true
}

// accessLog はリクエストごとにアクセスログを1行出力するミドルウェア
// リクエストIDで同時処理中のリクエストを区別できるようにする
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", uuid.NewString()[:8], r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
