package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/storefront-service/internal/app/storefront/queries"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_order"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_orders"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_products"
	"github.com/murkotick/storefront-service/internal/app/storefront/repo"
	"github.com/murkotick/storefront-service/internal/app/storefront/repo/localfs"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/create_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/delete_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/manage_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/render_invoice"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/update_product"
	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
	grpcstorefront "github.com/murkotick/storefront-service/internal/transport/grpc/storefront"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return fmt.Errorf("spanner.NewClient: %w", err)
	}
	defer client.Close()

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	cartRepo := repo.NewCartRepo()
	orderRepo := repo.NewOrderRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	images := localfs.New(cfg.ImageDir)
	invoices := localfs.New(cfg.InvoiceDir)

	// CQRS wiring
	cmds := grpcstorefront.Commands{
		Create:   create_product.NewInteractor(prodRepo, outboxRepo, cm, clk),
		Update:   update_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, images, clk, logger),
		Delete:   delete_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, images, clk, logger),
		Cart:     manage_cart.NewInteractor(cartRepo, cm, readModel, clk),
		Checkout: checkout.NewInteractor(orderRepo, cartRepo, outboxRepo, cm, readModel, clk, logger),
		Invoice:  render_invoice.NewInteractor(readModel, invoices, logger),
	}
	qrys := grpcstorefront.Queries{
		GetProduct:   get_product.NewHandler(readModel),
		ListProducts: list_products.NewHandler(readModel, cfg.CatalogPageSize),
		GetCart:      get_cart.NewHandler(readModel),
		ListOrders:   list_orders.NewHandler(readModel),
		GetOrder:     get_order.NewHandler(readModel),
	}
	h := grpcstorefront.NewHandler(cmds, qrys, logger)

	// gRPC server
	srv := grpc.NewServer()
	grpcstorefront.RegisterStorefrontServer(srv, h)
	hs := health.NewServer()
	hs.SetServingStatus(grpcstorefront.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		serveErr <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Error("grpc serve", zap.Error(err))
		}
	}

	hs.Shutdown()
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(cfg.ShutdownTimeout):
		srv.Stop()
	}

	logger.Info("server stopped")
	return nil
}
