// internal/pkg/bootstrap/app.go
package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"emporium/internal/pkg/config"
	"emporium/internal/pkg/httpclient"
	"emporium/internal/pkg/httpx"
	"emporium/internal/pkg/logger"
	"emporium/internal/pkg/tracing"
)

// AppCtx 是交给各服务注册路由时的依赖集合。
type AppCtx struct {
	Router     chi.Router
	Config     *config.Config
	DB         *gorm.DB
	HTTPClient *httpclient.Client
}

// AppInfo 包含启动一个微服务所需的全部特定信息。
type AppInfo struct {
	ServiceName string
	// RegisterHandlers 由每个服务注册自己的路由和依赖装配
	RegisterHandlers func(appCtx AppCtx)
}

// StartService 封装所有微服务通用的启动和优雅关停逻辑。
func StartService(info AppInfo) {
	logger.Init(info.ServiceName)
	log := logger.Ctx(context.Background())

	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// 1. Tracer
	tp, err := tracing.InitTracerProvider(info.ServiceName, cfg.Jaeger.Endpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer provider")
	}

	// 2. 数据库
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}

	// 3. 出站 HTTP 客户端（远程实体查询）
	client := httpclient.NewClient(otel.Tracer(info.ServiceName))

	// 4. 路由与通用中间件
	router := chi.NewRouter()
	router.Use(httpx.RequestID)
	router.Use(httpx.Trace(info.ServiceName))
	router.Use(httpx.Metrics(info.ServiceName))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Handle("/metrics", promhttp.Handler())

	if info.RegisterHandlers != nil {
		info.RegisterHandlers(AppCtx{Router: router, Config: cfg, DB: db, HTTPClient: client})
	}

	server := &http.Server{Addr: ":" + strconv.Itoa(cfg.Server.Port), Handler: router}
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msgf("%s listening", info.ServiceName)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// 优雅关停：收到信号后按后进先出的顺序清理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msgf("shutting down %s", info.ServiceName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 先刷掉缓冲中的 trace，再停 HTTP 服务器
	if err := tp.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error shutting down tracer provider")
	}
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error shutting down http server")
	}

	log.Info().Msgf("%s gracefully shut down", info.ServiceName)
}
