// Package lambda bootstraps the serverless deployment mode. The container
// is built once per execution environment and reused across warm
// invocations, so the MongoDB client and its connection pool survive
// between requests instead of reconnecting on every event.
package lambda

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hr-management-api/internal/config"
	"hr-management-api/internal/handlers"
	"hr-management-api/pkg/server"
)

var (
	initOnce  sync.Once
	container *server.Container
	initErr   error
)

// Container returns the shared application container, building it on the
// first call.
func Container() (*server.Container, error) {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		container, initErr = server.NewContainer(cfg)
	})
	return container, initErr
}

// Start builds a gin engine with the routes registered by the caller and
// runs the Lambda runtime, proxying API Gateway events onto the engine.
func Start(register func(r *gin.Engine, cfg *handlers.RouterConfig)) {
	c, err := Container()
	if err != nil {
		logrus.WithField("error", err.Error()).Fatal("Failed to initialize container")
	}

	engine := c.NewRouter()
	register(engine, c.RouterConfig())
	adapter := ginadapter.New(engine)

	awslambda.Start(func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, event)
	})
}
