package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/multierr"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/metrics"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/internal/service"
	"github.com/goodnatureofminers/shieldledger-backend/internal/transport"
)

type config struct {
	Addr     string `long:"addr" env:"LEDGER_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"LEDGER_REST_ADDR" description:"rest addr" default:":8001"`

	Store         string `long:"store" env:"LEDGER_STORE" description:"chain store backend" choice:"memory" choice:"badger" choice:"clickhouse" default:"memory"`
	BadgerPath    string `long:"badger-path" env:"LEDGER_BADGER_PATH" description:"badger data directory" default:"./data/ledger"`
	BadgerSync    bool   `long:"badger-sync-writes" env:"LEDGER_BADGER_SYNC_WRITES" description:"fsync every badger write"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"LEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	CacheSize     int    `long:"cache-size" env:"LEDGER_CACHE_SIZE" description:"blocks kept in the LRU cache, 0 disables it" default:"1024"`

	GenesisFile      string `long:"genesis-file" env:"LEDGER_GENESIS_FILE" description:"JSON genesis block, an empty genesis is used when unset"`
	GenesisTimestamp int64  `long:"genesis-timestamp" env:"LEDGER_GENESIS_TIMESTAMP" description:"timestamp of the empty genesis block" default:"1700000000"`

	QueueCapacity  int           `long:"queue-capacity" env:"LEDGER_QUEUE_CAPACITY" description:"write queue capacity" default:"64"`
	DecryptWorkers int           `long:"decrypt-workers" env:"LEDGER_DECRYPT_WORKERS" description:"record discovery workers, 0 uses GOMAXPROCS" default:"0"`
	ProduceBlocks  bool          `long:"produce-blocks" env:"LEDGER_PRODUCE_BLOCKS" description:"seal blocks from the memory pool"`
	BlockInterval  time.Duration `long:"block-interval" env:"LEDGER_BLOCK_INTERVAL" description:"block production interval" default:"10s"`
	BlockLimit     int           `long:"block-limit" env:"LEDGER_BLOCK_LIMIT" description:"max transactions per produced block, 0 takes the whole pool" default:"0"`
	BroadcastRPS   int           `long:"broadcast-rps" env:"LEDGER_BROADCAST_RPS" description:"broadcast requests per second, 0 disables throttling" default:"0"`
	ZMQPubAddr     string        `long:"zmq-pub-addr" env:"LEDGER_ZMQ_PUB_ADDR" description:"bind addr for hashblock notifications (zmq builds only)"`

	Log logConfig `group:"log" namespace:"log" env-namespace:"LEDGER_LOG"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	chain, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, chain.Close())
	}()

	genesis, err := loadGenesis(cfg.GenesisFile, cfg.GenesisTimestamp)
	if err != nil {
		return err
	}
	l, err := ledger.Open(ctx, chain, genesis, ledger.WithDecryptWorkers(cfg.DecryptWorkers))
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	logger.Info("ledger opened",
		zap.Uint32("height", l.LatestHeight()),
		zap.Stringer("hash", l.LatestHash()),
		zap.String("store", cfg.Store),
	)

	svc, err := service.NewService(l, metrics.NewService(), logger, cfg.QueueCapacity)
	if err != nil {
		return err
	}
	publisher, err := startBlockPublisher(cfg.ZMQPubAddr, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, publisher.Close())
	}()
	svc.OnBlock(publisher.Publish)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 4)
	go func() {
		if err := svc.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("consumer: %w", err)
		}
	}()
	if cfg.ProduceBlocks {
		producer := service.NewProducer(svc, cfg.BlockInterval, cfg.BlockLimit, logger)
		go func() {
			if err := producer.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("block producer: %w", err)
			}
		}()
	}

	grpcServer, err := startGRPCServer(runCtx, cfg.Addr, svc.Done(), logger, errCh)
	if err != nil {
		return err
	}
	defer stopGRPCServer(grpcServer, logger)

	restServer, err := newRESTServer(cfg, svc, logger)
	if err != nil {
		return err
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := restServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("shutting down after failure", zap.Error(err))
	}
	cancel()

	logger.Info("Shutting down the http server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	err = multierr.Append(err, restServer.Shutdown(shutdownCtx))
	<-svc.Done()
	return err
}

func startGRPCServer(ctx context.Context, addr string, done <-chan struct{}, logger *zap.Logger, errCh chan<- error) (*grpc.Server, error) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, transport.NewHealthServer(ctx, done))
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		logger.Info("Starting GRPC server", zap.String("addr", addr))
		if err := grpcServer.Serve(socket); err != nil {
			errCh <- fmt.Errorf("serve grpc: %w", err)
		}
	}()
	return grpcServer, nil
}

// stopGRPCServer drains in-flight calls, cutting open health watches after a grace period.
func stopGRPCServer(s *grpc.Server, logger *zap.Logger) {
	logger.Info("Shutting down gRPC server")
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		logger.Warn("gRPC graceful stop timed out")
		s.Stop()
	}
}

func newRESTServer(cfg config, svc *service.Service, logger *zap.Logger) (*http.Server, error) {
	var limiter ratelimit.Limiter
	if cfg.BroadcastRPS > 0 {
		limiter = ratelimit.New(cfg.BroadcastRPS)
	}
	handler, err := transport.NewRESTHandler(svc, metrics.NewHTTP(), limiter, logger.Named("rest"))
	if err != nil {
		return nil, err
	}
	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return nil, fmt.Errorf("register rest routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}, nil
}

func loadGenesis(path string, timestamp int64) (model.Block, error) {
	if path == "" {
		return ledger.NewGenesisBlock(timestamp, nil)
	}
	var genesis model.Block
	if err := readJSONFile(path, &genesis); err != nil {
		return model.Block{}, fmt.Errorf("read genesis: %w", err)
	}
	return genesis, nil
}
