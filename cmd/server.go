// Package main はHaishinサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"haishin/internal/config"
	"haishin/internal/server"
)

func main() {
	// コマンドラインオプション
	help := flag.Bool("help", false, "ヘルプを表示")

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Haishin")
		fmt.Println()
		fmt.Println("カレントディレクトリをポート8080で配信するローカル用静的ファイルサーバー")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Ginサーバーを作成
	srv := server.NewGin(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("Haishin サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
