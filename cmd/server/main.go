package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"campusparking/internal/api"
	"campusparking/internal/auth"
	"campusparking/internal/config"
	"campusparking/internal/repository"
	"campusparking/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService(cfg)
	slotSvc := service.NewSlotService(slotRepo)
	bookingSvc := service.NewBookingService(bookingRepo, sender)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	jobSvc := service.NewJobService(jobRepo)

	if err := slotSvc.SeedSlots(cfg.SlotSeed); err != nil {
		log.Fatalf("Failed to seed slots: %v", err)
	}

	slotHandler := api.NewSlotHandler(slotSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/slots", slotHandler.ListSlots).Methods("GET")
	r.HandleFunc("/book", bookingHandler.Book).Methods("POST")
	r.HandleFunc("/validate", bookingHandler.Validate).Methods("POST")
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/book").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/{slot_no}", bookingHandler.Release).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("*/5 * * * *", func() {
		if err := jobSvc.ReleaseExpiredBookings(); err != nil {
			log.Printf("Expiry sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule expiry sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Idempotency-Key"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(handlers.LoggingHandler(os.Stdout, r))))
}
