package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/handover-portal/internal/infra/database"
	"github.com/xavierca1/handover-portal/internal/infra/http/handlers"
	"github.com/xavierca1/handover-portal/internal/infra/http/middleware"
	"github.com/xavierca1/handover-portal/internal/infra/integration/twilio"
	"github.com/xavierca1/handover-portal/internal/infra/mail"
	"github.com/xavierca1/handover-portal/internal/infra/queue"
	"github.com/xavierca1/handover-portal/internal/infra/session"
	"github.com/xavierca1/handover-portal/internal/infra/worker"
	"github.com/xavierca1/handover-portal/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer redisClient.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "user"),
		getenv("RABBITMQ_PASS", "password"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Stores and repositories
	sessionStore := session.NewStore(redisClient, "wf", 0)
	clientRepo := database.NewClientRepository(db)
	eventRepo := database.NewEventRepository(db)

	// 2. Delivery channels
	smtpPort, _ := strconv.Atoi(getenv("SMTP_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("SMTP_SERVER"), smtpPort,
		os.Getenv("SENDER_EMAIL"), os.Getenv("SENDER_PASSWORD"),
		os.Getenv("SENDER_EMAIL"),
	)

	twilioClient := twilio.NewClient(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_PHONE_NUMBER"),
	)
	adminAlerts := mail.NewAdminAlertSender(twilioClient, os.Getenv("ADMIN_PHONE_NUMBER"))

	// 3. Audit trail (producer on the hot path, worker + retention off it)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	auditWorker := queue.NewWorker(rabbitMQ.Ch, eventRepo)
	go auditWorker.Start(queue.QueueName)

	retention := worker.NewEventRetentionWorker(db)
	go retention.Start(context.Background())

	// 4. Workflow engine
	workflowUC := usecase.NewWorkflowUseCase(
		sessionStore, clientRepo, mailSender, adminAlerts, producer,
		os.Getenv("UPI_PAYEE_VPA"), os.Getenv("UPI_PAYEE_NAME"),
	)

	// 5. Handlers
	workflowHandler := handlers.NewWorkflowHandler(workflowUC)
	healthHandler := handlers.NewHealthHandler(db, redisClient, rabbitMQ.Conn, os.Getenv("SMTP_SERVER"))

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{getenv("FRONTEND_ORIGIN", "http://localhost:5173")},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.EnsureSession)

		r.Post("/login", workflowHandler.Login)
		r.Post("/otp/verify", workflowHandler.VerifyOTP)
		r.Get("/dashboard", workflowHandler.Dashboard)
		r.Post("/dashboard/proceed", workflowHandler.Proceed)
		r.Get("/payment", workflowHandler.PaymentDetails)
		r.Post("/payment", workflowHandler.SubmitPayment)
		r.Post("/payment/verify", workflowHandler.VerifyPaymentOTP)
		r.Get("/access", workflowHandler.Access)
		r.Post("/access/finish", workflowHandler.Finish)
	})

	port := ":" + getenv("PORT", "8080")
	log.Printf("🔥 Handover portal running on port %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
