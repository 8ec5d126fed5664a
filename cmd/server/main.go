package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fastdrc/internal/parameters"
	"fastdrc/internal/platform/config"
	"fastdrc/internal/platform/httpserver"
	"fastdrc/internal/platform/logger"
	platformmetrics "fastdrc/internal/platform/metrics"
	platformredis "fastdrc/internal/platform/redis"
	"fastdrc/internal/translator"
	translatormetrics "fastdrc/internal/translator/metrics"
	httptransport "fastdrc/internal/transport/http"
	"fastdrc/internal/zds"
	"fastdrc/internal/zgw"
	zgwmetrics "fastdrc/internal/zgw/metrics"
	"fastdrc/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Translation logic lives in internal/translator.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("fastdrc stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry, err := zgw.New(zgw.Config{
		BaseURL:                             cfg.ZGW.BaseURL,
		EndpointZaak:                        cfg.ZGW.EndpointZaak,
		EndpointEnkelvoudigInformatieObject: cfg.ZGW.EndpointEnkelvoudigInformatieObject,
		EndpointInformatieObjectType:        cfg.ZGW.EndpointInformatieObjectType,
		ClientID:                            cfg.ZGW.ClientID,
		Secret:                              cfg.ZGW.Secret,
		Timeout:                             cfg.ZGW.Timeout,
	}, zgw.WithLogger(log),
		zgw.WithMetrics(zgwmetrics.NewWithRegisterer(reg)),
		zgw.WithBreaker(circuit.New("zgw",
			circuit.WithFailureThreshold(cfg.ZGW.BreakerThreshold),
			circuit.WithCooldown(cfg.ZGW.BreakerCooldown))))
	if err != nil {
		return err
	}

	health := map[string]httptransport.HealthCheck{}
	params := parameters.Static(cfg.TranslationParameters)
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		health["redis"] = redisClient.Health
		params, err = parameters.LoadRedis(ctx, redisClient, cfg.TranslationParametersKey, log)
		if err != nil {
			return err
		}
	}

	geefLijstZaakdocumenten, err := translator.New(params, registry,
		translator.WithLogger(log),
		translator.WithMetrics(translatormetrics.NewWithRegisterer(reg)))
	if err != nil {
		return err
	}

	handler := httptransport.NewHandler(log)
	handler.Handle(zds.SoapActionGeefLijstZaakdocumenten, zds.NameZakLv01, geefLijstZaakdocumenten)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Handler:  handler,
		Logger:   log,
		Metrics:  platformmetrics.NewWithRegisterer(reg),
		Gatherer: reg,
		Health:   health,
	})

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, router), log)
}
