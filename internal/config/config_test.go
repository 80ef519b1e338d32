package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	// 設定を読み込む
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 基本的な設定値を検証
	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Port != 8080 {
		t.Errorf("ポート番号が8080ではありません: %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "" {
		t.Errorf("ホストは全インターフェースを示す空文字列であるべきです: %q", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}
	// WriteTimeout は 0（無効）でも正常
	if cfg.Server.WriteTimeout < 0 {
		t.Error("書き込みタイムアウトが負の値です")
	}

	// 配信ルートは作業ディレクトリに固定される
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("作業ディレクトリの取得に失敗しました: %v", err)
	}
	if cfg.Root != wd {
		t.Errorf("配信ルートが作業ディレクトリと一致しません: got %s, want %s", cfg.Root, wd)
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	// 検証用の実在するディレクトリとファイル
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "正常な設定",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Root: dir,
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 99999, // 無効なポート
				},
				Root: dir,
			},
			expectErr: true,
		},
		{
			name: "存在しない配信ルート",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Root: filepath.Join(dir, "no-such-dir"),
			},
			expectErr: true,
		},
		{
			name: "配信ルートがディレクトリではない",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Root: file, // 通常ファイル
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestBaseURL は案内用URLの生成をテストする
func TestBaseURL(t *testing.T) {
	testCases := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{"空ホストはlocalhostになる", "", 8080, "http://localhost:8080"},
		{"0.0.0.0もlocalhostになる", "0.0.0.0", 8080, "http://localhost:8080"},
		{"明示的なホストはそのまま", "192.168.1.100", 9090, "http://192.168.1.100:9090"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Host: tc.host, Port: tc.port},
			}
			if actual := cfg.BaseURL(); actual != tc.expected {
				t.Errorf("URLが一致しません: got %s, want %s", actual, tc.expected)
			}
		})
	}
}
