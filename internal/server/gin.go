package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"haishin/internal/config"
	"haishin/internal/contenttype"
)

// GinServer はGinを使ったHTTPサーバーの実装
// 静的ファイルの配信に加えて確認用のJSONエンドポイントを提供する
type GinServer struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
}

// healthResponse はヘルスチェックのレスポンス
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// statusResponse はステータス確認のレスポンス
type statusResponse struct {
	Status    string     `json:"status"`
	Server    serverInfo `json:"server"`
	Root      string     `json:"root"`
	Timestamp time.Time  `json:"timestamp"`
}

// serverInfo はリッスン中のサーバー情報
type serverInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// NewGin は新しいGinServerインスタンスを作成する
func NewGin(cfg *config.Config) *GinServer {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())

	srv := &GinServer{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
	srv.setupRoutes()

	return srv
}

// setupRoutes はHTTPルートを設定する
func (s *GinServer) setupRoutes() {
	// ヘルスチェックエンドポイント
	s.engine.GET("/health", s.handleHealth)

	// APIエンドポイント
	s.engine.GET("/api/status", s.handleStatus)

	// 上記以外のパスはすべて静的ファイルとして配信する
	static := newStaticHandler(s.config.Root, contenttype.New())
	s.engine.NoRoute(gin.WrapH(static))
}

// handleHealth はヘルスチェックエンドポイントの実装
func (s *GinServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleStatus はステータス確認エンドポイントの実装
func (s *GinServer) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		Status: "running",
		Server: serverInfo{
			Host: s.config.Server.Host,
			Port: s.config.Server.Port,
		},
		Root:      s.config.Root,
		Timestamp: time.Now(),
	})
}

// requestLogger はリクエストIDつきのアクセスログを出力するミドルウェア
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.NewString()[:8]
		c.Set("request_id", reqID)

		start := time.Now()
		c.Next()

		log.Printf("[%s] %s %s %d (%v)",
			reqID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}

// Start はサーバーを起動する
func (s *GinServer) Start(ctx context.Context) error {
	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	// バナーはバインド成功後に出力する
	go func() {
		ln, err := net.Listen("tcp", s.httpServer.Addr)
		if err != nil {
			shutdownCh <- fmt.Errorf("アドレスのバインドに失敗: %w", err)
			return
		}
		color.Cyan("Serving on %s", s.config.BaseURL())
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// シャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをシャットダウンする
func (s *GinServer) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
