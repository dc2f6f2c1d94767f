package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/stripe/stripe-go/v82"

	"github.com/akibsaleh/dwellife-server/internal/app"
	"github.com/akibsaleh/dwellife-server/internal/config"
	"github.com/akibsaleh/dwellife-server/internal/controllers"
	"github.com/akibsaleh/dwellife-server/internal/middleware"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
	"github.com/akibsaleh/dwellife-server/internal/routes"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()
	stripe.Key = cfg.StripeSecretKey

	// 2) Core application (DB pool, schema)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize dwellife-server:", err)
	}
	defer application.Close()

	// 3) Repositories
	apartmentRepo := repositories.NewApartmentRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	agreementRepo := repositories.NewAgreementRepository(application.DB)
	announcementRepo := repositories.NewAnnouncementRepository(application.DB)
	couponRepo := repositories.NewCouponRepository(application.DB)
	paymentRepo := repositories.NewPaymentHistoryRepository(application.DB)

	if cfg.SeedApartments {
		if err := app.SeedApartments(context.Background(), apartmentRepo); err != nil {
			utils.Logger.Fatal("Failed to seed apartments:", err)
		}
	}

	// 4) Services
	tokenService := services.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	apartmentService := services.NewApartmentService(apartmentRepo)
	userService := services.NewUserService(userRepo)
	agreementService := services.NewAgreementService(agreementRepo, userRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	couponService := services.NewCouponService(couponRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	adminService := services.NewAdminService(apartmentRepo, userRepo)

	// 5) Controllers
	healthCtrl := controllers.NewHealthController(application)
	authCtrl := controllers.NewAuthController(tokenService)
	apartmentCtrl := controllers.NewApartmentController(apartmentService)
	userCtrl := controllers.NewUserController(userService)
	agreementCtrl := controllers.NewAgreementController(agreementService)
	announcementCtrl := controllers.NewAnnouncementController(announcementService)
	couponCtrl := controllers.NewCouponController(couponService)
	paymentCtrl := controllers.NewPaymentController(paymentService)
	adminCtrl := controllers.NewAdminController(adminService)

	// 6) Middleware
	auth := middleware.NewAuthMiddleware(tokenService, userRepo)
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h, auth.Authenticate)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h, auth.Authenticate, auth.RequireAdmin)
	}
	memberOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h, auth.Authenticate, auth.RequireMember)
	}

	// 7) Router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.JWT, authCtrl.IssueTokenHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Apartments, apartmentCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Users, userCtrl.RegisterHandler).Methods(http.MethodPost)

	// Authenticated routes
	router.Handle(routes.UserAdminCheck, authed(userCtrl.AdminCheckHandler)).Methods(http.MethodGet)
	router.Handle(routes.UserMemberCheck, authed(userCtrl.MemberCheckHandler)).Methods(http.MethodGet)
	router.Handle(routes.Agreement, authed(agreementCtrl.CreateHandler)).Methods(http.MethodPost)
	router.Handle(routes.SingleAgreement, authed(agreementCtrl.GetSingleHandler)).Methods(http.MethodGet)
	router.Handle(routes.AvailableCoupons, authed(couponCtrl.ListAvailableHandler)).Methods(http.MethodGet)
	router.Handle(routes.Announcements, authed(announcementCtrl.ListHandler)).Methods(http.MethodGet)
	router.Handle(routes.PaymentHistory, authed(paymentCtrl.HistoryHandler)).Methods(http.MethodGet)

	// Member routes
	router.Handle(routes.MakePayment, memberOnly(agreementCtrl.MakePaymentHandler)).Methods(http.MethodGet)
	router.Handle(routes.CouponByCode, memberOnly(couponCtrl.GetByCodeHandler)).Methods(http.MethodGet)
	router.Handle(routes.PaymentHistory, memberOnly(paymentCtrl.RecordHandler)).Methods(http.MethodPost)
	router.Handle(routes.CreatePaymentIntent, memberOnly(paymentCtrl.CreateIntentHandler)).Methods(http.MethodPost)

	// Admin routes
	router.Handle(routes.Users, adminOnly(userCtrl.ListByRoleHandler)).Methods(http.MethodGet)
	router.Handle(routes.UserByEmail, adminOnly(userCtrl.UpdateRoleHandler)).Methods(http.MethodPatch)
	router.Handle(routes.RemoveMember, adminOnly(userCtrl.RemoveMemberHandler)).Methods(http.MethodPatch)
	router.Handle(routes.AgreementByID, adminOnly(agreementCtrl.UpdateStatusHandler)).Methods(http.MethodPatch)
	router.Handle(routes.Coupons, adminOnly(couponCtrl.ListAllHandler)).Methods(http.MethodGet)
	router.Handle(routes.Coupons, adminOnly(couponCtrl.CreateHandler)).Methods(http.MethodPost)
	router.Handle(routes.CouponByID, adminOnly(couponCtrl.UpdateAvailabilityHandler)).Methods(http.MethodPatch)
	router.Handle(routes.CouponByID, adminOnly(couponCtrl.DeleteHandler)).Methods(http.MethodDelete)
	router.Handle(routes.Announcements, adminOnly(announcementCtrl.CreateHandler)).Methods(http.MethodPost)
	router.Handle(routes.AdminProfileInfo, adminOnly(adminCtrl.ProfileInfoHandler)).Methods(http.MethodGet)

	// 8) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
