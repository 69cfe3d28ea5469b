package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/gavinjunior/portfolio-backend/config"
)

func SetGinMode(app config.AppConfig) {
	switch {
	case app.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case app.Environment == "test":
		gin.SetMode(gin.TestMode)
	}
}
