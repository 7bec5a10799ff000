package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"todo-api/internal/config"
	"todo-api/internal/greeting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.AdaptForServerless()

	logger := config.NewLogger(cfg.Log)
	logger.WithFields(logrus.Fields{
		"function": cfg.Serverless.FunctionName,
		"region":   cfg.Serverless.Region,
		"stage":    cfg.Serverless.Stage,
	}).Info("Starting greeting function")

	awslambda.Start(greeting.NewHandler(logger).Handle)
}
