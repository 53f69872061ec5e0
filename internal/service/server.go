package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/handlers"
	middleware "github.com/edumela/admin-api/internal/middlewares"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/repository"
	"github.com/edumela/admin-api/internal/validation"
)

type ServerService struct {
	Server *http.Server
	db     *db.DB
}

func NewServerService(rootContext context.Context, address string, db *db.DB) ServerService {
	server := &http.Server{
		Addr: address,
		BaseContext: func(_ net.Listener) context.Context {
			return rootContext
		},
	}
	return ServerService{Server: server, db: db}
}

func (serverService *ServerService) SetRouter(jwtConfig *handlers.JWTConfig) {
	serverService.Server.Handler = serverService.getRouter(jwtConfig)
}

func (serverService *ServerService) getRouter(jwtConfig *handlers.JWTConfig) chi.Router {
	router := chi.NewRouter()

	router.Use(logger.RequestLogger)

	validate := validation.New()

	userRepository := repository.NewUserRepository(serverService.db)
	orderRepository := repository.NewOrderRepository(serverService.db)
	catalogRepository := repository.NewCatalogRepository(serverService.db)
	enrollmentRepository := repository.NewEnrollmentRepository(serverService.db)
	couponRepository := repository.NewCouponRepository(serverService.db)
	contentRepository := repository.NewContentRepository(serverService.db)

	authHandler := handlers.NewAuthHandler(jwtConfig, userRepository, validate)
	router.Post("/api/admin/register/", authHandler.RegisterHandler)
	router.Post("/api/admin/login/", authHandler.LoginHandler)
	router.Post("/api/admin/refresh/", authHandler.RefreshHandler)

	reportService := NewOrderReportService(orderRepository)
	orderHandler := handlers.NewOrderHandler(orderRepository, reportService, validate)
	catalogHandler := handlers.NewCatalogHandler(catalogRepository, validate)
	enrollmentsHandler := handlers.NewEnrollmentsHandler(enrollmentRepository, validate)
	couponsHandler := handlers.NewCouponsHandler(couponRepository, validate)
	contentHandler := handlers.NewContentHandler(contentRepository, validate)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authHandler))

		r.Post("/api/admin/logout/", authHandler.LogoutHandler)

		r.Get("/api/admin/orders/", orderHandler.GetList)
		r.Get("/api/admin/orders/book-products/", orderHandler.GetBookProducts)
		r.Get("/api/admin/orders/export/", orderHandler.Export)
		r.Put("/api/admin/orders/{orderID}/status/", orderHandler.UpdateStatus)

		r.Post("/api/admin/courses/", catalogHandler.CreateCourse)
		r.Get("/api/admin/courses/", catalogHandler.GetCourses)
		r.Put("/api/admin/courses/{courseID}/", catalogHandler.UpdateCourse)
		r.Delete("/api/admin/courses/{courseID}/", catalogHandler.DeleteCourse)
		r.Get("/api/admin/courses/{courseID}/chapters/", catalogHandler.GetChapters)
		r.Post("/api/admin/chapters/", catalogHandler.CreateChapter)
		r.Put("/api/admin/chapters/{chapterID}/", catalogHandler.UpdateChapter)
		r.Delete("/api/admin/chapters/{chapterID}/", catalogHandler.DeleteChapter)
		r.Get("/api/admin/chapters/{chapterID}/classes/", catalogHandler.GetClassSessions)
		r.Post("/api/admin/classes/", catalogHandler.CreateClassSession)
		r.Put("/api/admin/classes/{classID}/", catalogHandler.UpdateClassSession)
		r.Delete("/api/admin/classes/{classID}/", catalogHandler.DeleteClassSession)

		r.Post("/api/admin/products/", catalogHandler.CreateProduct)
		r.Get("/api/admin/products/", catalogHandler.GetProducts)
		r.Put("/api/admin/products/{productID}/", catalogHandler.UpdateProduct)
		r.Delete("/api/admin/products/{productID}/", catalogHandler.DeleteProduct)

		r.Post("/api/admin/enrollments/", enrollmentsHandler.Add)
		r.Get("/api/admin/enrollments/", enrollmentsHandler.GetList)
		r.Put("/api/admin/enrollments/{enrollmentID}/status/", enrollmentsHandler.UpdateStatus)

		r.Post("/api/admin/coupons/", couponsHandler.Add)
		r.Get("/api/admin/coupons/", couponsHandler.GetList)
		r.Put("/api/admin/coupons/{couponID}/active/", couponsHandler.SetActive)
		r.Delete("/api/admin/coupons/{couponID}/", couponsHandler.Delete)

		r.Post("/api/admin/notices/", contentHandler.AddNotice)
		r.Get("/api/admin/notices/", contentHandler.GetNotices)
		r.Delete("/api/admin/notices/{noticeID}/", contentHandler.DeleteNotice)

		r.Post("/api/admin/sliders/", contentHandler.AddSlider)
		r.Get("/api/admin/sliders/", contentHandler.GetSliders)
		r.Delete("/api/admin/sliders/{sliderID}/", contentHandler.DeleteSlider)

		r.Post("/api/admin/team/", contentHandler.AddTeamMember)
		r.Get("/api/admin/team/", contentHandler.GetTeamMembers)
		r.Delete("/api/admin/team/{memberID}/", contentHandler.DeleteTeamMember)

		r.Get("/api/admin/reviews/", contentHandler.GetReviews)
		r.Put("/api/admin/reviews/{reviewID}/visibility/", contentHandler.SetReviewVisibility)
		r.Delete("/api/admin/reviews/{reviewID}/", contentHandler.DeleteReview)
	})

	return router
}

func (serverService *ServerService) RunServer(serverErr *chan error) {
	if err := serverService.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		*serverErr <- err
	} else {
		*serverErr <- nil
	}
}

func (serverService *ServerService) Shutdown() error {
	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if shutdownErr := serverService.Server.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	return nil
}
