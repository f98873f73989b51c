package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/John-Robertt/nodefmt-go/internal/httpapi"
	"github.com/John-Robertt/nodefmt-go/internal/logger"
	"github.com/John-Robertt/nodefmt-go/internal/svcconf"
)

func main() {
	configFile := flag.String("config", "", "服务配置文件（INI，可选）")
	listen := flag.String("listen", "", "HTTP 监听地址（覆盖配置文件）")
	logLevel := flag.String("log-level", "", "日志级别（覆盖配置文件）")
	healthcheck := flag.Bool("healthcheck", false, "检查本机 /healthz 后退出（容器健康检查用）")
	flag.Parse()

	cfg, err := svcconf.Load(*configFile)
	if err != nil {
		logger.Init("info")
		lg := logger.WithComponent("main")
		lg.Fatal().Err(err).Str("file", *configFile).Msg("load config")
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger.Init(cfg.LogLevel)
	log := logger.WithComponent("main")

	if *healthcheck {
		os.Exit(runHealthcheck(cfg.Listen, 3*time.Second))
	}

	srv := &http.Server{
		Addr: cfg.Listen,
		Handler: httpapi.NewHandlerWithOptions(httpapi.Options{
			FormatTimeout: cfg.FormatTimeout,
			MaxBodyBytes:  cfg.MaxBodyBytes,
		}),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	log.Info().Str("listen", cfg.Listen).Msg("listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")

		shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			_ = srv.Close()
		}

		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}

// deriveHealthzURL turns a listen address into the local /healthz URL.
// Wildcard hosts probe loopback.
func deriveHealthzURL(listen string) (string, error) {
	s := strings.TrimSpace(listen)
	if s == "" {
		return "", errors.New("empty listen address")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return strings.TrimRight(s, "/") + "/healthz", nil
	}

	host, port, err := net.SplitHostPort(s)
	if err != nil {
		if _, aerr := strconv.Atoi(s); aerr != nil {
			return "", err
		}
		host, port = "", s
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/healthz", nil
}

func runHealthcheck(listen string, timeout time.Duration) int {
	u, err := deriveHealthzURL(listen)
	if err != nil {
		return 1
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(u)
	if err != nil {
		return 1
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}
