package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/bike-configurator/internal/config"
	"github.com/you-humble/bike-configurator/internal/converter"
	"github.com/you-humble/bike-configurator/internal/migrator"
	catrepository "github.com/you-humble/bike-configurator/internal/repository/catalog"
	ordrepository "github.com/you-humble/bike-configurator/internal/repository/order"
	catservice "github.com/you-humble/bike-configurator/internal/service/catalog"
	cfgservice "github.com/you-humble/bike-configurator/internal/service/configuration"
	ordservice "github.com/you-humble/bike-configurator/internal/service/order"
	ordproducer "github.com/you-humble/bike-configurator/internal/service/producer/order"
	cathttp "github.com/you-humble/bike-configurator/internal/transport/http/catalog/v1"
	cfghttp "github.com/you-humble/bike-configurator/internal/transport/http/configuration/v1"
	ordhttp "github.com/you-humble/bike-configurator/internal/transport/http/order/v1"
	"github.com/you-humble/bike-configurator/platform/closer"
	"github.com/you-humble/bike-configurator/platform/kafka"
	"github.com/you-humble/bike-configurator/platform/kafka/producer"
	"github.com/you-humble/bike-configurator/platform/logger"
)

type CatalogRepository interface {
	catservice.CatalogRepository
	cfgservice.CatalogRepository
}

type OrderRepository interface {
	cfgservice.OrderRepository
	ordservice.OrderRepository
}

type ConfigurationService interface {
	cfghttp.ConfigurationService
	ordhttp.ConfigurationService
}

type Handler interface {
	Register(r chi.Router)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	catalogRepository CatalogRepository
	orderRepository   OrderRepository

	syncProducer         sarama.SyncProducer
	orderCreatedProducer kafka.Producer
	orderProducer        cfgservice.OrderCreatedSender

	conv ordproducer.Converter

	configurationService ConfigurationService
	catalogService       cathttp.CatalogService
	orderService         ordhttp.OrderService

	configurationHandler Handler
	orderHandler         Handler
	catalogHandler       Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		poolCfg, err := pgxpool.ParseConfig(config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to parse pg config: %v\n", err))
		}
		poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			pgxdecimal.Register(conn.TypeMap())
			return nil
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) CatalogRepository(ctx context.Context) CatalogRepository {
	if d.catalogRepository == nil {
		d.catalogRepository = catrepository.NewCatalogRepository(d.DBPool(ctx))
	}

	return d.catalogRepository
}

func (d *di) OrderRepository(ctx context.Context) OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = ordrepository.NewOrderRepository(d.DBPool(ctx))
	}

	return d.orderRepository
}

func (d *di) KafkaConverter(ctx context.Context) ordproducer.Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.OrderCreatedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) OrderCreatedProducer(ctx context.Context) kafka.Producer {
	if d.orderCreatedProducer == nil {
		d.orderCreatedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.OrderCreatedTopic(),
			logger.L(),
		)
	}

	return d.orderCreatedProducer
}

func (d *di) OrderProducer(ctx context.Context) cfgservice.OrderCreatedSender {
	if d.orderProducer == nil {
		d.orderProducer = ordproducer.NewOrderProducer(
			d.OrderCreatedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.orderProducer
}

func (d *di) ConfigurationService(ctx context.Context) ConfigurationService {
	if d.configurationService == nil {
		d.configurationService = cfgservice.NewConfigurationService(
			d.CatalogRepository(ctx),
			d.OrderRepository(ctx),
			d.OrderProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.configurationService
}

func (d *di) CatalogService(ctx context.Context) cathttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catservice.NewCatalogService(
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) OrderService(ctx context.Context) ordhttp.OrderService {
	if d.orderService == nil {
		d.orderService = ordservice.NewOrderService(
			d.OrderRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) ConfigurationHandler(ctx context.Context) Handler {
	if d.configurationHandler == nil {
		d.configurationHandler = cfghttp.NewConfigurationHandler(d.ConfigurationService(ctx))
	}

	return d.configurationHandler
}

func (d *di) OrderHandler(ctx context.Context) Handler {
	if d.orderHandler == nil {
		d.orderHandler = ordhttp.NewOrderHandler(
			d.ConfigurationService(ctx),
			d.OrderService(ctx),
		)
	}

	return d.orderHandler
}

func (d *di) CatalogHandler(ctx context.Context) Handler {
	if d.catalogHandler == nil {
		d.catalogHandler = cathttp.NewCatalogHandler(d.CatalogService(ctx))
	}

	return d.catalogHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
