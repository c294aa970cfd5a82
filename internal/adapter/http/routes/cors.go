package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// corsMiddleware runs go-chi/cors inside gin. Preflight requests are answered
// by cors itself and never reach the route handlers.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return func(ctx *gin.Context) {
		passed := false
		c.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			ctx.Request = r
		})).ServeHTTP(ctx.Writer, ctx.Request)

		if !passed {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
