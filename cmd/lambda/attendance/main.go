package main

import (
	"github.com/gin-gonic/gin"

	"hr-management-api/internal/handlers"
	"hr-management-api/internal/resource"
	"hr-management-api/pkg/lambda"
)

func main() {
	lambda.Start(func(r *gin.Engine, cfg *handlers.RouterConfig) {
		handlers.RegisterResource(r, cfg, resource.Attendance)
	})
}
