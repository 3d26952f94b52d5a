package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	middleware "github.com/callsentry/callscreen/internal/platform/http/middleware"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/callsentry/callscreen/internal/engine"
	redisCache "github.com/callsentry/callscreen/internal/platform/cache/redis"
	httpHandler "github.com/callsentry/callscreen/internal/platform/http"
	"github.com/callsentry/callscreen/internal/platform/storage/scylla"
	"github.com/callsentry/callscreen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	apiKey := os.Getenv("API_MASTER_KEY")
	if apiKey == "" {
		log.Fatal("❌ API_MASTER_KEY is required in .env")
	}

	scyllaHost := os.Getenv("SCYLLA_HOST")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	redisAddr := os.Getenv("REDIS_ADDR")
	port := os.Getenv("HTTP_PORT")

	if scyllaHost == "" {
		scyllaHost = "localhost"
	}
	if port == "" {
		port = ":8080"
	}

	log.Println("🛡️  Starting CallSentry screening registry...")

	lists := loadLists()
	eng := engine.New(lists)

	session, err := scylla.Connect(keyspace, scyllaHost)
	if err != nil {
		log.Fatalf("❌ Error connecting to ScyllaDB: %v", err)
	}
	defer session.Close()

	repo := scylla.NewScyllaRepository(session)

	var cache service.VerdictCache
	if redisAddr != "" {
		client, err := redisCache.Connect(redisAddr)
		if err != nil {
			log.Fatalf("❌ Error connecting to Redis: %v", err)
		}
		defer client.Close()
		cache = redisCache.NewVerdictCache(client, 1*time.Hour)
	} else {
		log.Println("⚠️  REDIS_ADDR not set, verdict cache disabled")
	}

	svc := service.NewScreeningService(eng, repo, cache)

	handler := httpHandler.NewHandler(svc)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.APIKeyAuth(apiKey))
		handler.RegisterRoutes(pr)
	})

	log.Printf("🚀 Server listening on http://localhost%s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatalf("❌ HTTP server error: %v", err)
	}
}

// loadLists starts from the built-in blacklists and swaps in file-based
// ones when configured, so deployments can ship their own data.
func loadLists() engine.Lists {
	lists, err := engine.DefaultLists().OverrideFromFiles(
		os.Getenv("KNOWN_SPAM_FILE"),
		os.Getenv("HIGH_RISK_FILE"),
	)
	if err != nil {
		log.Fatalf("❌ Error loading blacklists: %v", err)
	}

	log.Printf("📋 Blacklists ready: %d known-spam, %d high-risk", len(lists.KnownSpam), len(lists.HighRisk))
	return lists
}
