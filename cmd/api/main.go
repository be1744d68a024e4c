package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agaman/jobboard-api/internal/config"
	"github.com/agaman/jobboard-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/agaman/jobboard-api/internal/infrastructure/jwt"
	"github.com/agaman/jobboard-api/internal/infrastructure/recaptcha"
	s3infra "github.com/agaman/jobboard-api/internal/infrastructure/s3"
	"github.com/agaman/jobboard-api/internal/infrastructure/smtp"
	"github.com/agaman/jobboard-api/internal/infrastructure/sns"
	stripeinfra "github.com/agaman/jobboard-api/internal/infrastructure/stripe"
	transporthttp "github.com/agaman/jobboard-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if the key is missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for resume uploads.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		UserRepo:      dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		AffiliateRepo: dynamo.NewAffiliateRepo(dynamoClient, cfg.DynamoTables.Affiliates),
		RoleRepo:      dynamo.NewRoleRepo(dynamoClient, cfg.DynamoTables.Roles),
		SettingRepo:   dynamo.NewSettingRepo(dynamoClient, cfg.DynamoTables.Settings),
		PromoRepo:     dynamo.NewPromoRepo(dynamoClient, cfg.DynamoTables.Promos),
		PackageRepo:   dynamo.NewPackageRepo(dynamoClient, cfg.DynamoTables.Packages),
		JobRepo:       dynamo.NewJobRepo(dynamoClient, cfg.DynamoTables.Jobs),
		UserJobRepo:   dynamo.NewUserJobRepo(dynamoClient, cfg.DynamoTables.UserJobs),
		OrderRepo:     dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders),
		S3Store:       s3Store,
		Mailer:        mailer,
		SMSSender:     smsSender,
		JWTProvider:   jwtProvider,
		Captcha:       recaptcha.NewVerifier(cfg.RecaptchaVerifyURL),
		Gateway:       stripeinfra.NewGateway(cfg.StripeAPIKey),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
