package config

import (
	"fmt"
	"os"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig
	Root   string // 配信ルートディレクトリ
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト（空文字列で全インターフェース）
	Port int    // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration // 読み込みタイムアウト
	WriteTimeout time.Duration // 書き込みタイムアウト
}

// Load は設定を読み込む
// 配信ルートは起動時の作業ディレクトリに固定する
// フラグ・環境変数・設定ファイルによる上書きは行わない
func Load() (*Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("作業ディレクトリの取得に失敗: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        "", // 全インターフェースでリッスン
			Port:        8080,
			ReadTimeout: 10 * time.Second,
			// 低速なクライアントへの送信を途中で打ち切らない
			WriteTimeout: 0,
		},
		Root: root,
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// 配信ルートの検証
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("配信ルートにアクセスできません: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ルートがディレクトリではありません: %s", c.Root)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BaseURL は起動時に案内するURLを返す
// 空ホストや0.0.0.0は全インターフェースでのリッスンなのでlocalhostで案内する
func (c *Config) BaseURL() string {
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.Server.Port)
}
