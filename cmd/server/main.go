// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/iyunix/go-medbridge/internal/config"
	"github.com/iyunix/go-medbridge/internal/domain"
	"github.com/iyunix/go-medbridge/internal/handlers"
	"github.com/iyunix/go-medbridge/internal/middleware"
	"github.com/iyunix/go-medbridge/internal/repository/conversation"
	"github.com/iyunix/go-medbridge/internal/repository/message"
	"github.com/iyunix/go-medbridge/internal/repository/summary"
	"github.com/iyunix/go-medbridge/internal/services"
	"github.com/iyunix/go-medbridge/internal/services/ai"
	"github.com/iyunix/go-medbridge/internal/services/storage"
)

const audioMountPoint = "/audio_storage"

func main() {
	cfg := config.Load()

	// Idempotent startup: the database's parent directory and the audio
	// directory are created if absent, and AutoMigrate only adds what is
	// missing.
	if dir := filepath.Dir(cfg.DatabasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.Conversation{}, &domain.Message{}, &domain.Summary{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	conversationRepo := conversation.NewConversationRepository(db)
	messageRepo := message.NewMessageRepository(db)
	summaryRepo := summary.NewSummaryRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.GroqAPIKey
	aiConfig.BaseURL = cfg.LLMBaseURL
	aiConfig.Model = cfg.LLMModel

	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}
	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY is not set; translation and summarization will fall back to original text")
	}

	translator := services.NewTranslationService(provider, services.NewLogger("translation"))
	summarizer := services.NewSummaryService(provider, services.NewLogger("summary"))

	audioStorage, err := storage.NewAudioStorageService(cfg.AudioDir, audioMountPoint)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize audio storage: %v", err)
	}

	// --- Handlers ---
	conversationHandler := handlers.NewConversationHandler(conversationRepo)
	messageHandler := handlers.NewMessageHandler(conversationRepo, messageRepo, translator)
	audioHandler := handlers.NewAudioHandler(messageRepo, audioStorage)
	summaryHandler := handlers.NewSummaryHandler(conversationRepo, messageRepo, summaryRepo, summarizer)

	// --- Router Setup ---
	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/conversations", conversationHandler.CreateConversation).Methods("POST")
	r.HandleFunc("/conversations/", conversationHandler.CreateConversation).Methods("POST")
	r.HandleFunc("/conversations", conversationHandler.ListConversations).Methods("GET")
	r.HandleFunc("/conversations/", conversationHandler.ListConversations).Methods("GET")
	r.HandleFunc("/conversations/{id:[0-9]+}", conversationHandler.GetConversation).Methods("GET")

	r.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	r.HandleFunc("/messages/", messageHandler.CreateMessage).Methods("POST")
	// The search route must be registered before the path-parameter route.
	r.HandleFunc("/messages/search", messageHandler.SearchMessages).Methods("GET")
	r.HandleFunc("/messages/{conversation_id:[0-9]+}", messageHandler.GetConversationMessages).Methods("GET")

	r.HandleFunc("/audio/upload", audioHandler.UploadAudio).Methods("POST")

	r.HandleFunc("/ai/summary/{conversation_id:[0-9]+}", summaryHandler.GenerateSummary).Methods("GET")

	// Static serving of previously uploaded audio clips.
	r.PathPrefix(audioMountPoint + "/").Handler(
		http.StripPrefix(audioMountPoint+"/", http.FileServer(http.Dir(audioStorage.Dir()))))

	// --- Catch-all Error Responders ---
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("MedBridge conversation API starting on port %s", cfg.ServerPort)
	log.Printf("Database: %s | Audio storage: %s", cfg.DatabasePath, cfg.AudioDir)

	// --- Start Server in Goroutine ---
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
