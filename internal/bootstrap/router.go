package bootstrap

import (
	"net/http"

	httpapi "github.com/dataset-scout/backend/internal/api/http"
	"github.com/dataset-scout/backend/internal/api/http/middleware"
	recommendhttp "github.com/dataset-scout/backend/internal/recommend/http"
	"github.com/dataset-scout/backend/internal/recommend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	StaticDir   string
	Recommend   *service.RecommendService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	recommendHandler := recommendhttp.NewHandler(dep.Recommend)
	recommendHandler.RegisterRoutes(api)

	// Anything else falls through to the static client assets.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(dep.StaticDir))))

	return r
}
