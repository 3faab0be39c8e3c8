// Package httpclient sends requests to the clinic's backend services and
// collapses every failure into a *exceptions.CustomError.
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	Timeout time.Duration
	// Limiter, when set, is shared by every client so the portal as a whole
	// stays under the configured outbound rate.
	Limiter *rate.Limiter
}

type Client struct {
	service string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	Log     *zap.Logger
}

func New(service, baseURL string, logger *zap.Logger, opts Options) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: opts.Limiter,
		Log:     logger,
	}
}

// NewLimiter returns nil when perSecond is not positive, which disables throttling.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   interface{}
}

func (c *Client) Service() string {
	return c.service
}

// Do sends req and decodes a successful JSON response into out when out is not nil.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	body, err := c.DoRaw(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.Log.Error("httpclient.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingServiceKey, c.service),
			zap.String(constvars.LoggingEndpointKey, req.Path),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, c.service)
	}
	return nil
}

// DoRaw sends req and returns the body of a 2xx response as is.
func (c *Client) DoRaw(ctx context.Context, req Request) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.Log.Warn("httpclient.DoRaw rate limiter wait aborted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingServiceKey, c.service),
				zap.Error(err),
			)
			return nil, exceptions.ErrBackendRateLimit(err)
		}
	}

	var payload io.Reader
	if req.Body != nil {
		requestJSON, err := json.Marshal(req.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(requestJSON)
	}

	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, payload)
	if err != nil {
		c.Log.Error("httpclient.DoRaw error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, c.service),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+req.Token)
	}
	if requestID != "" {
		httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.Log.Error("httpclient.DoRaw error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, c.service),
			zap.String(constvars.LoggingMethodKey, req.Method),
			zap.String(constvars.LoggingEndpointKey, req.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("httpclient.DoRaw error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, c.service),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorMessage(body)
		c.Log.Warn("httpclient.DoRaw backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, c.service),
			zap.String(constvars.LoggingMethodKey, req.Method),
			zap.String(constvars.LoggingEndpointKey, req.Path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
		return nil, exceptions.ErrBackendStatus(c.service, resp.StatusCode, message)
	}

	c.Log.Debug("httpclient.DoRaw succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceKey, c.service),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingEndpointKey, req.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseSizeKey, len(body)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return body, nil
}

// errorMessage pulls the human readable message out of an error body, if the
// body is JSON and has one.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	result := gjson.GetBytes(body, "message")
	if result.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(result.String())
}
