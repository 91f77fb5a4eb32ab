package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"crmbackend/internal/analytics"
	"crmbackend/internal/config"
	"crmbackend/internal/handlers"
	"crmbackend/internal/middleware"
	"crmbackend/internal/store"
	"crmbackend/internal/users"
)

func main() {
	config.Load()

	if config.AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	directory := users.NewStaticDirectory()

	var productStore store.Store
	switch config.AppEnv.StoreDriver {
	case "memory":
		productStore = store.NewMemoryStore()
	case "mongo":
		client, err := store.ConnectMongo(config.AppEnv.MongoURI)
		if err != nil {
			log.Fatal("mongo connect failed:", err)
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())

		productStore, err = store.NewMongoStore(db)
		if err != nil {
			log.Fatal("mongo store init failed:", err)
		}
	default:
		log.Fatalf("unknown STORE_DRIVER: %s", config.AppEnv.StoreDriver)
	}

	analyticsStore, err := analytics.Open(config.AppEnv.AnalyticsDSN)
	if err != nil {
		log.Fatal("analytics db open failed:", err)
	}
	defer analyticsStore.Close()

	if config.AppEnv.DemoMode {
		if err := analyticsStore.Seed(context.Background(), []int{1, 2, 3, 4, 5}); err != nil {
			log.Println("[ANALYTICS] [ERROR] demo seed failed:", err)
		} else {
			log.Println("[ANALYTICS] [INFO] demo orders seeded")
		}
	}

	r := gin.Default()
	r.Use(middleware.CORS())

	r.POST("/api/auth/login", handlers.Login(directory, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))

	api := r.Group("/api")
	api.Use(middleware.Auth(config.AppEnv.JWTSecret))
	{
		api.GET("/auth/me", handlers.Me(directory))

		api.GET("/products", handlers.GetProducts(productStore))
		api.GET("/products/export", handlers.ExportProducts(productStore))
		api.GET("/products/:id", handlers.GetProduct(productStore))
		api.POST("/products", handlers.CreateProduct(productStore))
		api.PUT("/products/:id", handlers.UpdateProduct(productStore))
		api.DELETE("/products/:id", handlers.DeleteProduct(productStore))
		api.POST("/products/bulk-delete", handlers.BulkDeleteProducts(productStore))

		api.GET("/statistics", handlers.GetStatistics(productStore))
		api.GET("/analytics", handlers.GetAnalytics(analyticsStore))

		api.GET("/customers", handlers.GetCustomers(config.AppEnv.DemoMode))
		api.POST("/customers", handlers.CreateCustomer())
		api.PUT("/customers/:id", handlers.UpdateCustomer())
		api.DELETE("/customers/:id", handlers.DeleteCustomer())
	}

	log.Printf("CRM backend listening on :%s (store=%s, demo=%t)",
		config.AppEnv.Port, config.AppEnv.StoreDriver, config.AppEnv.DemoMode)

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
