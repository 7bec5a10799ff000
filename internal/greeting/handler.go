package greeting

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// DefaultName is used when the request names nobody
const DefaultName = "World"

// Response is the JSON body returned to API Gateway
type Response struct {
	Message string                        `json:"message"`
	Input   events.APIGatewayProxyRequest `json:"input"`
}

// Handler greets the caller and echoes the request it received
type Handler struct {
	logger *logrus.Logger
}

// NewHandler creates a new greeting handler
func NewHandler(logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{logger: logger}
}

// Handle is the Lambda entry point for API Gateway proxy events
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": event.RequestContext.RequestID,
		"method":     event.HTTPMethod,
		"path":       event.Path,
	}).Info("Received event")

	body, err := json.Marshal(Response{
		Message: fmt.Sprintf("Hello, %s from Serverless API!", h.resolveName(event)),
		Input:   event,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to encode greeting: %w", err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

// resolveName picks the name from the query string, then the JSON body
func (h *Handler) resolveName(event events.APIGatewayProxyRequest) string {
	if name := event.QueryStringParameters["name"]; name != "" {
		return name
	}

	if event.Body == "" {
		return DefaultName
	}

	raw := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			h.logger.WithError(err).Debug("Ignoring undecodable body")
			return DefaultName
		}
		raw = decoded
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.logger.WithError(err).Debug("Ignoring body that is not a JSON greeting")
		return DefaultName
	}

	if payload.Name != "" {
		return payload.Name
	}
	return DefaultName
}
