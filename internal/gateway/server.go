package gateway

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/journalgw/internal/ai"
	"github.com/nao1215/journalgw/internal/config"
	"github.com/nao1215/journalgw/internal/metrics"
	"github.com/nao1215/journalgw/pkg/middleware"
)

// Server はゲートウェイのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// cfg は設定値の取得元。リクエストごとに参照する。
	cfg config.Source
	// newGenerator は生成AIバックエンドを生成する。
	newGenerator ai.Factory
	// metrics は判定結果の記録先。
	metrics metrics.Recorder
	// metricsHandler は /metrics のハンドラ。nilなら公開しない。
	metricsHandler http.Handler
}

// Option はサーバーの設定を変更する。
type Option func(*Server)

// WithGeneratorFactory は生成AIバックエンドの生成関数を差し替える。
func WithGeneratorFactory(f ai.Factory) Option {
	return func(s *Server) {
		s.newGenerator = f
	}
}

// WithMetrics はPrometheusメトリクスを有効にし、/metrics で公開する。
func WithMetrics(p *metrics.Prom) Option {
	return func(s *Server) {
		s.metrics = p
		s.metricsHandler = p.Handler()
	}
}

// NewServer は新しいゲートウェイサーバーを生成する。
// cfgはリクエストのたびに参照されるため、実行中の設定変更も反映される。
func NewServer(port string, cfg config.Source, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("設定の取得元が指定されていません")
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{
		config.GetOr(cfg, config.KeyFrontendURL, "http://localhost:3000"),
		config.Get(cfg, config.KeySiteOrigin),
	}))

	s := &Server{
		router:       router,
		port:         port,
		cfg:          cfg,
		newGenerator: ai.GeminiFactory(),
		metrics:      metrics.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()

	return s, nil
}

// Handler はサーバーのHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		// 振り返り生成
		api.POST("/generate-reflection", s.handleGenerateReflection())
		// Supabase接続パラメータ
		api.GET("/supabase-config", s.handleSupabaseConfig())
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "journal-gateway"})
	})
}
