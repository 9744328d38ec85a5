package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"order-fulfillment/internal/auth"
	"order-fulfillment/internal/catalog"
	catmysql "order-fulfillment/internal/catalog/mysql"
	httpctl "order-fulfillment/internal/controllers/http"
	mmysql "order-fulfillment/internal/infra/mysql"
	"order-fulfillment/internal/infra/rabbitmq"
	mysqlrepo "order-fulfillment/internal/repository/mysql"
	"order-fulfillment/internal/services"
	"order-fulfillment/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	telemetry.InitLogger()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)
	catalogStore := catmysql.NewCatalogStore(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	cachedCatalog := catalog.NewCachedStore(catalogStore, redisClient, time.Minute)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewOrderService(repo, cachedCatalog, publisher)

	if ids := warmupIDs(os.Getenv("WARMUP_PRODUCT_IDS")); len(ids) > 0 {
		go func() {
			time.Sleep(5 * time.Second)
			if err := s.WarmupProductCache(context.Background(), ids); err != nil {
				log.Printf("cache warmup: %v", err)
			}
		}()
	}

	verifier := auth.NewVerifier(os.Getenv("JWT_SECRET"))
	handler := httpctl.NewHandler(s, verifier)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting order service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

func warmupIDs(env string) []uint64 {
	var out []uint64
	for _, part := range strings.Split(env, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
