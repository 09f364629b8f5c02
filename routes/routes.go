// Package routes wires the HTTP API onto a fiber app.
package routes

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sgo/auth"
	"sgo/config"
	"sgo/middleware"
	"sgo/models"
	"sgo/realtime"
	"sgo/repository"
)

// Deps are the shared services the routes are built from.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Logger   *log.Entry
	Hub      *realtime.Hub
	Registry *prometheus.Registry

	// AccessLog receives the request log lines. It defaults to the
	// logger's output.
	AccessLog io.Writer
}

// NewApp returns a fiber app with the error handler and global middleware
// installed and every route registered.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "sgo",
		ErrorHandler: ErrorHandler(d.Logger, d.Config.Server.Debug),
	})

	app.Use(recover.New())
	accessLog := d.AccessLog
	if accessLog == nil {
		accessLog = d.Logger.Logger.Out
	}
	app.Use(logger.New(logger.Config{Output: accessLog}))
	app.Use(cors.New())
	app.Use(middleware.NewMetrics(d.Registry).Handler())

	Setup(app, d)
	return app
}

// Setup registers the entity, auth and operational routes on app.
func Setup(app *fiber.App, d Deps) {
	tokens := auth.NewTokenIssuer(d.Config.JWT)
	users := repository.NewUserRepository(d.DB)
	authService := auth.NewService(
		users,
		auth.NewBcryptHasher(d.Config.Auth.BcryptCost),
		tokens,
		d.Logger.WithField("component", "auth"),
	)

	app.Get("/healthz", healthz(d.DB, d.Config.Server.Debug))
	app.Get("/livez", livez)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	if d.Hub != nil {
		app.Get("/ws", d.Hub.Handler())
	}

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", register(authService))
	authRoutes.Post("/login", login(authService))

	var guards []fiber.Handler
	if d.Config.Auth.RequireToken {
		guards = append(guards, middleware.RequireAuth(tokens))
	}

	products := repository.NewProductRepository(d.DB)
	orderDetails := repository.NewOrderDetailRepository(d.DB)

	newIntHandler[models.Category]("category", repository.NewCategoryRepository(d.DB), d.Hub).
		register(api.Group("/category", guards...))
	newIntHandler[models.Customer]("customer", repository.NewCustomerRepository(d.DB), d.Hub).
		register(api.Group("/customer", guards...))
	newIntHandler[models.Order]("order", repository.NewOrderRepository(d.DB), d.Hub).
		register(api.Group("/order", guards...))
	newIntHandler[models.Supplier]("supplier", repository.NewSupplierRepository(d.DB), d.Hub).
		register(api.Group("/supplier", guards...))
	newIntHandler[models.User]("user", users, d.Hub).
		register(api.Group("/user", guards...))

	productRoutes := api.Group("/product", guards...)
	productRoutes.Put("/:id/image", uploadProductImage(products, d.Hub))
	productRoutes.Get("/:id/image", getProductImage(products))
	newIntHandler[models.Product]("product", products, d.Hub).register(productRoutes)

	detailRoutes := api.Group("/order-detail", guards...)
	detailRoutes.Get("/:orderId", getOrderDetails(orderDetails))
	newOrderDetailHandler(orderDetails, d.Hub).register(detailRoutes)
}
