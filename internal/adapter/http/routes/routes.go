package routes

import (
	"context"
	"errors"
	"log"
	_ "movequote/docs"
	"movequote/internal/adapter/http/handlers"
	"movequote/internal/adapter/http/middleware"
	"movequote/internal/usecase"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases the HTTP surface dispatches to.
type Dependencies struct {
	Transition usecase.IQuoteTransitionUseCase
	Query      usecase.IQuoteQueryUseCase
	Requests   usecase.IQuoteRequestUseCase
	JWTSecret  []byte
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.JWTSecret)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, deps)
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, port string, deps Dependencies) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	quoteHandler := handlers.NewMoverQuoteHandler(deps.Transition, deps.Query)
	requestHandler := handlers.NewQuoteRequestHandler(deps.Requests)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, requestHandler)
}

func setMiddlewares(router *gin.Engine, jwtSecret []byte) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.ExtractUser(jwtSecret))
}
