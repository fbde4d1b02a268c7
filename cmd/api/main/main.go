//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(req)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	defer server.Shutdown()
	lambda.Start(Handler)
}
