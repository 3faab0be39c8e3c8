package auth

import (
	"context"
	"net/url"
	"strings"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authClient struct {
	client *httpclient.Client
	Log    *zap.Logger
}

func NewAuthClient(baseUrl string, logger *zap.Logger, opts httpclient.Options) contracts.AuthClient {
	return &authClient{
		client: httpclient.New(constvars.ServiceAuth, baseUrl, logger, opts),
		Log:    logger,
	}
}

// Login exchanges credentials for a bearer token. The auth service sends the
// credentials as query parameters and answers with the token as the body.
func (c *authClient) Login(ctx context.Context, username, password string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.client.DoRaw(ctx, httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.PathAuthLogin,
		Query:  url.Values{"username": {username}, "password": {password}},
	})
	if err != nil {
		c.Log.Error("authClient.Login error calling auth service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	token := strings.TrimSpace(string(body))
	if strings.HasPrefix(token, `"`) {
		var quoted string
		if err := json.Unmarshal([]byte(token), &quoted); err != nil {
			return "", exceptions.ErrDecodeResponse(err, constvars.ServiceAuth)
		}
		token = quoted
	}
	if token == "" {
		return "", exceptions.ErrEmptyToken()
	}

	c.Log.Info("authClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return token, nil
}

func (c *authClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	_, err := c.client.DoRaw(ctx, httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.PathAuthRegister,
		Body:   request,
	})
	if err != nil {
		c.Log.Error("authClient.Register error calling auth service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("authClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
