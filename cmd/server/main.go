package main

import (
	"log"
	"os"
	"time"

	"paddlemarket/internal/controllers/http"
	mmysql "paddlemarket/internal/infra/mysql"
	"paddlemarket/internal/infra/rabbitmq"
	mysqlrepo "paddlemarket/internal/repository/mysql"
	"paddlemarket/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	typeRepo := mysqlrepo.NewProductTypeRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)
	provinceRepo := mysqlrepo.NewProvinceRepository(db)
	localityRepo := mysqlrepo.NewLocalityRepository(db)
	pickupRepo := mysqlrepo.NewPickupPointRepository(db)
	reviewRepo := mysqlrepo.NewReviewRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	orderService := services.NewOrderService(orderRepo, userRepo, pickupRepo, publisher)
	productService := services.NewProductService(productRepo, typeRepo)
	catalogService := services.NewCatalogService(typeRepo)
	userService := services.NewUserService(userRepo)
	locationService := services.NewLocationService(provinceRepo, localityRepo, pickupRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo, userRepo)

	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         redisHost + ":6379",
			DB:           0,
			PoolSize:     200,
			MinIdleConns: 20,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		orderService.SetRedisClient(redisClient)
		productService.SetRedisClient(redisClient)
	}

	handler := http.NewHandler(
		orderService,
		productService,
		catalogService,
		userService,
		locationService,
		reviewService,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting marketplace service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
