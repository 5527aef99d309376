package http

import (
	"github.com/MikeRez0/ypdiscount/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	tokenService port.TokenService,
	customerHandler *CustomerHandler,
	quoteHandler *QuoteHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := authCheck(tokenService, NewHandler(logger))

	api := router.Group("/api")
	{
		api.POST("/quote", quoteHandler.Quote)
		api.POST("/tax", quoteHandler.Tax)

		customers := api.Group("/customers")
		{
			customers.POST("", customerHandler.RegisterCustomer)
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("/:id/token", customerHandler.IssueToken)
		}

		me := api.Group("/me")
		{
			me.Use(auth)
			me.GET("", customerHandler.CurrentCustomer)
			me.POST("/quotes", quoteHandler.CreateCustomerQuote)
			me.GET("/quotes", quoteHandler.ListCustomerQuotes)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
