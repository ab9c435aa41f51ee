package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin out of debug logging outside development.
func SetGinMode(env string) {
	switch env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	}
}
