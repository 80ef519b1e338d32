// Package server は、静的ファイルのHTTP配信を管理します。
//
// このパッケージは、HTTPサーバーの起動、作業ディレクトリ配下の
// 静的ファイルの配信、Content-Typeの解決を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 配信ルート配下の静的ファイルの配信
//   - 拡張子に基づくContent-Typeの解決（.js/.mjsはapplication/javascript）
//   - リクエストIDつきアクセスログの出力
//   - シグナル受信によるシャットダウン
//
// 仕様:
//   - 標準ライブラリのnet/httpを使用（Gin実装はNewGin）
//   - 接続ごとに独立したゴルーチンで処理し、相互に影響しない
//   - 404/403・ディレクトリ一覧・リダイレクトはhttp.FileServerの既定動作
//   - GET/HEAD以外のメソッドは405を返す
//   - ファイルの作成・変更は一切行わない（読み取り専用）
package server
