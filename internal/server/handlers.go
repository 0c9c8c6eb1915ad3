package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/reminders"
	"github.com/patramworks/patram/internal/repository"
)

const defaultPageSize = 10

type Handlers struct {
	clients  *repository.ClientRepository
	orders   *repository.OrderRepository
	products *repository.ProductRepository
	visits   *repository.VisitRepository
	users    *repository.UserRepository
	prefs    *reminders.PrefStore
	snapshot *reminders.Snapshot
	log      *zap.Logger
	pageSize int
}

func NewHandlers(
	clients *repository.ClientRepository,
	orders *repository.OrderRepository,
	products *repository.ProductRepository,
	visits *repository.VisitRepository,
	users *repository.UserRepository,
	prefs *reminders.PrefStore,
	snapshot *reminders.Snapshot,
	log *zap.Logger,
	pageSize int,
) *Handlers {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &Handlers{
		clients:  clients,
		orders:   orders,
		products: products,
		visits:   visits,
		users:    users,
		prefs:    prefs,
		snapshot: snapshot,
		log:      log,
		pageSize: pageSize,
	}
}

func NewRouter(h *Handlers, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/clients", h.ListClients)
		api.POST("/clients", h.CreateClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/history", h.OrderHistory)
		api.POST("/orders", h.CreateOrder)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)

		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		api.GET("/visits", h.ListVisits)
		api.POST("/visits", h.CreateVisit)
		api.PUT("/visits/:id", h.UpdateVisit)
		api.DELETE("/visits/:id", h.DeleteVisit)

		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.POST("/auth/login", h.Login)

		api.GET("/reminders", h.ListReminders)
		api.PUT("/reminders/:clientID", h.UpsertReminder)

		api.GET("/dashboard/stats", h.DashboardStats)
	}

	return r
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
