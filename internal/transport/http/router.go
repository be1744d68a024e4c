package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/agaman/jobboard-api/internal/application/affiliate"
	"github.com/agaman/jobboard-api/internal/application/auth"
	"github.com/agaman/jobboard-api/internal/application/dashboard"
	"github.com/agaman/jobboard-api/internal/application/job"
	"github.com/agaman/jobboard-api/internal/application/pack"
	"github.com/agaman/jobboard-api/internal/application/payment"
	"github.com/agaman/jobboard-api/internal/application/promo"
	"github.com/agaman/jobboard-api/internal/application/recruiter"
	"github.com/agaman/jobboard-api/internal/application/role"
	"github.com/agaman/jobboard-api/internal/application/setting"
	"github.com/agaman/jobboard-api/internal/application/user"
	"github.com/agaman/jobboard-api/internal/application/userjob"
	"github.com/agaman/jobboard-api/internal/config"
	"github.com/agaman/jobboard-api/internal/domain"
	jwtinfra "github.com/agaman/jobboard-api/internal/infrastructure/jwt"
	s3infra "github.com/agaman/jobboard-api/internal/infrastructure/s3"
	"github.com/agaman/jobboard-api/internal/infrastructure/smtp"
	"github.com/agaman/jobboard-api/internal/infrastructure/sns"
	"github.com/agaman/jobboard-api/internal/transport/http/handler"
	appmiddleware "github.com/agaman/jobboard-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	AffiliateRepo AffiliateRepository
	RoleRepo      RoleRepository
	SettingRepo   SettingRepository
	PromoRepo     PromoRepository
	PackageRepo   PackageRepository
	JobRepo       JobRepository
	UserJobRepo   UserJobRepository
	OrderRepo     OrderRepository
	S3Store       *s3infra.Store
	Mailer        smtp.Mailer
	SMSSender     sns.SMSSender
	JWTProvider   *jwtinfra.Provider
	Captcha       CaptchaVerifier
	Gateway       PaymentGateway
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	userAuthDeps := auth.ServiceDeps{
		Creds:    auth.NewUserCredentials(deps.UserRepo),
		Roles:    deps.RoleRepo,
		Settings: deps.SettingRepo,
		Captcha:  deps.Captcha,
		Mailer:   deps.Mailer,
		SMS:      deps.SMSSender,
	}
	affAuthDeps := auth.ServiceDeps{
		Creds:                 auth.NewAffiliateCredentials(deps.AffiliateRepo),
		Settings:              deps.SettingRepo,
		Captcha:               deps.Captcha,
		Mailer:                deps.Mailer,
		SMS:                   deps.SMSSender,
		FixedRole:             domain.RoleAffiliate,
		ShapeCheckFirst:       true,
		RequireActiveForReset: true,
	}
	// Assigned conditionally: a nil *Provider stored in the interface field
	// would pass the services' nil checks and blow up on first use.
	if deps.JWTProvider != nil {
		userAuthDeps.JWT = deps.JWTProvider
		affAuthDeps.JWT = deps.JWTProvider
	}
	userAuthSvc := auth.NewService(userAuthDeps)
	affAuthSvc := auth.NewService(affAuthDeps)
	userSvc := user.NewService(user.ServiceDeps{
		UserRepo:    deps.UserRepo,
		RoleRepo:    deps.RoleRepo,
		PackageRepo: deps.PackageRepo,
		SettingRepo: deps.SettingRepo,
		Captcha:     deps.Captcha,
		ObjectStore: deps.S3Store,
	})
	affSvc := affiliate.NewService(deps.AffiliateRepo)
	roleSvc := role.NewService(deps.RoleRepo)
	settingSvc := setting.NewService(deps.SettingRepo)
	promoSvc := promo.NewService(deps.PromoRepo)
	packSvc := pack.NewService(deps.PackageRepo)
	jobSvc := job.NewService(deps.JobRepo)
	userJobSvc := userjob.NewService(deps.UserJobRepo, deps.UserRepo)
	recruiterSvc := recruiter.NewService(deps.UserRepo, deps.UserJobRepo)
	paymentSvc := payment.NewService(payment.ServiceDeps{
		OrderRepo:   deps.OrderRepo,
		PackageRepo: deps.PackageRepo,
		UserRepo:    deps.UserRepo,
		Promos:      promoSvc,
		Gateway:     deps.Gateway,
	})
	dashSvc := dashboard.NewService(dashboard.ServiceDeps{
		Users:      deps.UserRepo,
		Affiliates: deps.AffiliateRepo,
		Jobs:       deps.JobRepo,
		Promos:     deps.PromoRepo,
		Packages:   deps.PackageRepo,
		Orders:     deps.OrderRepo,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(userAuthSvc, userSvc)
	affAuthH := handler.NewAffiliateAuthHandler(affAuthSvc)
	userH := handler.NewUserHandler(userSvc)
	affH := handler.NewAffiliateHandler(affSvc)
	roleH := handler.NewRoleHandler(roleSvc)
	settingH := handler.NewSettingHandler(settingSvc)
	promoH := handler.NewPromoHandler(promoSvc)
	packH := handler.NewPackageHandler(packSvc)
	jobH := handler.NewJobHandler(jobSvc)
	userJobH := handler.NewUserJobHandler(userJobSvc)
	recruiterH := handler.NewRecruiterHandler(recruiterSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	dashH := handler.NewDashboardHandler(dashSvc)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/Auth/login", authH.Login)
		r.With(sensitiveRL.Limit).Post("/Auth/ForgotPassword", authH.ForgotPassword)
		r.Post("/Auth/VerifyOTP", authH.VerifyOTP)
		r.Post("/Auth/ResetPassword", authH.ResetPassword)

		r.With(sensitiveRL.Limit).Post("/AffiliateAuth/AffiliateLogin", affAuthH.Login)
		r.With(sensitiveRL.Limit).Post("/AffiliateAuth/ForgotPasswordForAffiliate", affAuthH.ForgotPassword)
		r.Post("/AffiliateAuth/VerifyOTPForAffiliate", affAuthH.VerifyOTP)
		r.Post("/AffiliateAuth/ResetPasswordForAffiliate", affAuthH.ResetPassword)

		// Self-service registration and the referral code check stay public.
		r.With(sensitiveRL.Limit).Post("/Users/add", userH.Add)
		r.Get("/Affiliate/ValidateCode/{code}", affH.ValidateCode)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/Auth/GetAllRecruiter", authH.GetAllRecruiter)

			r.Get("/Users/{id}", userH.Get)
			r.Put("/Users/{id}", userH.Update)
			r.Post("/Users/{id}/IncrementFreeIQ", userH.IncrementFreeIQ)
			r.Post("/Users/UploadResume", userH.UploadResume)
			r.Post("/Users/UpdatePackage", userH.UpdatePackage)
			r.Get("/Users/affiliate/{affiliateID}", userH.ListByAffiliate)

			r.Get("/FetchJobs", jobH.List)
			r.Get("/FetchJobs/{id}", jobH.Get)
			r.Post("/FetchJobs/search", jobH.Search)

			r.Post("/UserJobs", userJobH.Add)
			r.Get("/UserJobs/Exists", userJobH.Exists)
			r.Post("/UserJobs/CountsByDates", userJobH.CountsByDates)
			r.Get("/UserJobs/user/{userID}", userJobH.ListByUser)
			r.Get("/UserJobs/user/{userID}/counts", userJobH.Counts)
			r.Get("/UserJobs/affiliate/{affiliateID}/count", userJobH.CountByAffiliate)
			r.Get("/UserJobs/{id}", userJobH.Get)
			r.Put("/UserJobs/{id}", userJobH.Update)
			r.Delete("/UserJobs/{id}", userJobH.Delete)

			r.Get("/Recruiter/{recruiterID}/JobSeekers", recruiterH.JobSeekers)
			r.Get("/Recruiter/{recruiterID}/JobCounts", recruiterH.JobCounts)

			r.Get("/Promo/code/{code}", promoH.GetByCode)

			r.Get("/Package", packH.List)
			r.Get("/Package/{id}", packH.Get)

			r.Post("/Payments/create", paymentH.Create)
			r.Post("/Payments/confirm", paymentH.Confirm)

			r.Get("/Dashboard/affiliate/{affiliateID}", dashH.CountsForAffiliate)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/Users", userH.List)
				r.Get("/Users/role/{roleName}", userH.ListByRole)
				r.Delete("/Users/{id}", userH.Delete)
				r.Post("/Users/DeleteList", userH.DeleteList)

				r.Get("/UserJobs", userJobH.List)
				r.Get("/UserJobs/Problems", userJobH.ProblemList)
				r.Put("/UserJobs/Problem", userJobH.Problem)
				r.Post("/UserJobs/DeleteList", userJobH.DeleteList)

				r.Get("/Roles", roleH.List)
				r.Get("/Roles/{id}", roleH.Get)
				r.Post("/Roles", roleH.Add)
				r.Put("/Roles", roleH.Update)
				r.Delete("/Roles/{id}", roleH.Delete)
				r.Post("/Roles/DeleteList", roleH.DeleteList)

				r.Get("/Affiliate", affH.List)
				r.Get("/Affiliate/{id}", affH.Get)
				r.Post("/Affiliate", affH.Add)
				r.Put("/Affiliate/{id}", affH.Update)
				r.Delete("/Affiliate/{id}", affH.Delete)
				r.Put("/Affiliate/{id}/password", affH.UpdatePassword)

				r.Get("/Promo", promoH.List)
				r.Get("/Promo/{id}", promoH.Get)
				r.Post("/Promo", promoH.Add)
				r.Put("/Promo/{id}", promoH.Update)
				r.Delete("/Promo/{id}", promoH.Delete)

				r.Post("/Package", packH.Add)
				r.Put("/Package/{id}", packH.Update)
				r.Delete("/Package/{id}", packH.Delete)

				r.Get("/Settings", settingH.List)
				r.Get("/Settings/{name}", settingH.Get)
				r.Post("/Settings", settingH.Add)
				r.Put("/Settings", settingH.Update)

				r.Get("/OrderInfo", paymentH.ListOrders)
				r.Get("/OrderInfo/{id}", paymentH.GetOrder)
				r.Post("/OrderInfo", paymentH.AddOrder)

				r.Get("/Dashboard", dashH.Counts)
			})
		})
	})

	return r
}
