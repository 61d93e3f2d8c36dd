package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/rl1809/roomledger/internal/adapter/auth"
	"github.com/rl1809/roomledger/internal/adapter/handler"
	"github.com/rl1809/roomledger/internal/adapter/handler/pb"
	"github.com/rl1809/roomledger/internal/adapter/ledger"
	"github.com/rl1809/roomledger/internal/adapter/lock"
	"github.com/rl1809/roomledger/internal/adapter/storage"
	"github.com/rl1809/roomledger/internal/config"
	"github.com/rl1809/roomledger/internal/core/domain"
	"github.com/rl1809/roomledger/internal/core/service"
	"github.com/rl1809/roomledger/internal/port"
)

const settlementAssetDecimals = 6

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Info("connected to redis")

	// Initialize adapters
	assetLedger := ledger.NewRedisLedger(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	locker := lock.NewRedisLocker(rdb, cfg.LockTTL)
	verifier := auth.NewStaticVerifier()

	// Ensure the settlement asset exists
	settlementAsset := cfg.SettlementAssetID
	if settlementAsset == "" {
		settlementAsset, err = assetLedger.CreateAsset(ctx, settlementAssetDecimals, "treasury", port.FeeConfig{})
		if err != nil {
			log.Fatalf("failed to create settlement asset: %v", err)
		}
		log.WithField("settlement_asset", settlementAsset).Info("created settlement asset")
	} else if _, err := assetLedger.TotalSupply(ctx, settlementAsset); err != nil {
		log.Fatalf("settlement asset %s not usable: %v", settlementAsset, err)
	}

	// Initialize services
	registry := service.NewRegistryService(mysqlAdapter, assetLedger, verifier, locker, settlementAsset, log, cfg.EventQueueSize)
	pools := service.NewPoolService(mysqlAdapter, assetLedger, verifier, locker, log, cfg.EventQueueSize)

	// Start event journal workers
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			eventWorker(id, registry.Events(), mysqlAdapter, log)
		}(i)
		go func(id int) {
			defer wg.Done()
			eventWorker(id, pools.Events(), mysqlAdapter, log)
		}(i + cfg.WorkerCount)
	}
	log.Infof("started %d event workers", cfg.WorkerCount*2)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(registry, pools)
	pb.RegisterRoomLedgerServer(grpcServer, grpcHandler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Infof("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(registry, pools)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/properties", httpHandler.RegisterProperty)
	mux.HandleFunc("/api/properties/issue", httpHandler.IssueUnit)
	mux.HandleFunc("/api/bookings", httpHandler.RecordBooking)
	mux.HandleFunc("/api/distributions", httpHandler.DistributeRevenue)
	mux.HandleFunc("/api/pools", httpHandler.CreatePool)
	mux.HandleFunc("/api/pools/provide", httpHandler.ProvideLiquidity)
	mux.HandleFunc("/api/pools/withdraw", httpHandler.WithdrawLiquidity)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	// Close event queues and wait for workers to drain them
	registry.Close()
	pools.Close()
	wg.Wait()
	log.Info("event workers stopped")

	rdb.Close()
	db.Close()
	log.Info("connections closed")
}

func eventWorker(id int, queue <-chan domain.Event, db port.DatabaseRepository, log *logrus.Logger) {
	for e := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := db.AppendEvent(ctx, e); err != nil {
			// Journaling is best effort; the operation already committed.
			log.WithFields(logrus.Fields{
				"worker":     id,
				"event_id":   e.ID,
				"event_type": e.Type,
				"record_id":  e.RecordID,
			}).Errorf("failed to journal event: %v", err)
		}

		cancel()
	}
}
