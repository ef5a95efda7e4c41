package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/fnurozcetin/lexStamp/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no session required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"lexstamp"}`))
	}).Methods("GET")

	// Initialize handlers
	sessionHandler := NewSessionHandler(container.SessionService, container.Logger)
	documentHandler := NewDocumentHandler(
		container.UploadService,
		container.DocumentService,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	// Session routes (no session required: connect creates one)
	api.HandleFunc("/session/connect", sessionHandler.Connect).Methods("POST")
	api.HandleFunc("/session", sessionHandler.Get).Methods("GET")
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods("POST")

	// Protected routes (require a connected wallet session)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(SessionMiddleware(container.SessionService, container.Logger))

	protected.HandleFunc("/documents", documentHandler.Upload).Methods("POST")
	protected.HandleFunc("/documents", documentHandler.List).Methods("GET")
	protected.HandleFunc("/documents/incoming", documentHandler.Incoming).Methods("GET")
	protected.HandleFunc("/documents/{id}", documentHandler.Get).Methods("GET")
	protected.HandleFunc("/documents/{id}/content", documentHandler.Content).Methods("GET")
	protected.HandleFunc("/documents/{id}/verify", documentHandler.Verify).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		ExposedHeaders: []string{
			headerContentUnavailable,
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
