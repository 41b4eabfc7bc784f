package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/store"

	"github.com/joho/godotenv"
)

const maxRequestBytes = 1 << 20

func main() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	corsOrigins := splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 10)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 20)

	// The catalog lives and dies with the process. Seeded so the API is
	// browsable immediately; fresh IDs continue above the seed's maximum.
	bookRepository := store.NewBookMem(store.SeedBooks())
	bookHandler := apphttp.NewBookHandler(bookRepository)

	router := newRouter(bookHandler)
	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(maxRequestBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// newRouter wires the catalog routes. /books/publish is registered as an
// exact pattern so it wins over the /books/{id} subtree.
func newRouter(bookHandler *apphttp.BookHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// No backing service to probe; the in-memory store is ready as soon
		// as the process is.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Handle("/books", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(bookHandler.List),
		http.MethodPut: http.HandlerFunc(bookHandler.Update),
	}))
	router.Handle("/books/publish", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(bookHandler.ListByYear),
	}))
	router.Handle("/books/", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(bookHandler.GetByID),
		http.MethodDelete: http.HandlerFunc(bookHandler.Delete),
	}))
	router.Handle("/create-book", apphttp.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(bookHandler.Create),
	}))

	return router
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid value for %s: %q, using default %d", key, v, def)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s: %q, using default %g", key, v, def)
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
