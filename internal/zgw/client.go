package zgw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fastdrc/internal/zgw/metrics"
	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/platform/circuit"
	"fastdrc/pkg/platform/sentinel"
)

const (
	DefaultEndpointZaak                        = "/zaken/api/v1/zaken"
	DefaultEndpointEnkelvoudigInformatieObject = "/documenten/api/v1/enkelvoudiginformatieobjecten"
	DefaultEndpointInformatieObjectType        = "/catalogi/api/v1/informatieobjecttypen"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Config describes where the registry lives and how to authenticate.
type Config struct {
	BaseURL                             string
	EndpointZaak                        string
	EndpointEnkelvoudigInformatieObject string
	EndpointInformatieObjectType        string
	ClientID                            string
	Secret                              string
	Timeout                             time.Duration
}

// Client talks to the ZGW APIs. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	breaker    *circuit.Breaker
	now        func() time.Time
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient replaces the default client; its Timeout is left as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		if b != nil {
			c.breaker = b
		}
	}
}

// WithClock sets the clock used for token issue times.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New constructs a registry client. Empty endpoint paths fall back to the
// standard ZGW paths.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, dErrors.New(dErrors.CodeConfiguration, "zgw base url is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "zgw base url is invalid")
	}
	if cfg.EndpointZaak == "" {
		cfg.EndpointZaak = DefaultEndpointZaak
	}
	if cfg.EndpointEnkelvoudigInformatieObject == "" {
		cfg.EndpointEnkelvoudigInformatieObject = DefaultEndpointEnkelvoudigInformatieObject
	}
	if cfg.EndpointInformatieObjectType == "" {
		cfg.EndpointInformatieObjectType = DefaultEndpointInformatieObjectType
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
		tracer:     otel.Tracer("fastdrc/zgw"),
		breaker:    circuit.New("zgw"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

func (c *Client) EndpointEnkelvoudigInformatieObject() string {
	return c.cfg.EndpointEnkelvoudigInformatieObject
}

func (c *Client) EndpointInformatieObjectType() string {
	return c.cfg.EndpointInformatieObjectType
}

// ZaakByIdentificatie finds the zaak with the given business identifier.
// No match is a CodeNotFound error.
func (c *Client) ZaakByIdentificatie(ctx context.Context, identificatie string) (*Zaak, error) {
	const op = "zaak_by_identificatie"
	ctx, span := c.tracer.Start(ctx, "zgw.ZaakByIdentificatie",
		trace.WithAttributes(attribute.String("zaak.identificatie", identificatie)))
	defer span.End()
	start := time.Now()

	endpoint := c.cfg.BaseURL + c.cfg.EndpointZaak + "?identificatie=" + url.QueryEscape(identificatie)
	var result page[Zaak]
	status, err := c.getJSON(ctx, endpoint, &result)
	if err == nil && status == http.StatusNotFound {
		err = c.statusError(endpoint, status)
	}
	if err != nil {
		c.finish(span, op, "error", start, err)
		return nil, err
	}

	switch len(result.Results) {
	case 0:
		err = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound,
			fmt.Sprintf("zaak with identificatie '%s' not found", identificatie))
		c.finish(span, op, "not_found", start, err)
		return nil, err
	case 1:
		c.finish(span, op, "ok", start, nil)
		return &result.Results[0], nil
	default:
		err = dErrors.New(dErrors.CodeDataIntegrity,
			fmt.Sprintf("multiple zaken found with identificatie '%s'", identificatie))
		c.finish(span, op, "error", start, err)
		return nil, err
	}
}

// InformatieObjectTypeByURL fetches a document type. A type the catalogus
// does not know yields (nil, nil).
func (c *Client) InformatieObjectTypeByURL(ctx context.Context, typeURL string) (*InformatieObjectType, error) {
	const op = "informatieobjecttype_by_url"
	ctx, span := c.tracer.Start(ctx, "zgw.InformatieObjectTypeByURL",
		trace.WithAttributes(attribute.String("informatieobjecttype.url", typeURL)))
	defer span.End()
	start := time.Now()

	var result InformatieObjectType
	status, err := c.getJSON(ctx, typeURL, &result)
	if err != nil {
		c.finish(span, op, "error", start, err)
		return nil, err
	}
	if status == http.StatusNotFound {
		c.finish(span, op, "not_found", start, nil)
		return nil, nil
	}
	c.finish(span, op, "ok", start, nil)
	return &result, nil
}

// getJSON performs a GET and decodes a 2xx body into out. A 404 is returned
// as a status without error so callers decide what absence means.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "build zgw request").WithDetail(endpoint)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Crs", "EPSG:4326")
	if c.cfg.Secret != "" {
		token, err := c.token()
		if err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeConfiguration, "sign zgw token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if !c.breaker.Allow() {
		return 0, dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, "zgw circuit open").WithDetail(endpoint)
	}

	c.logger.DebugContext(ctx, "zgw request", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	c.recordOutcome(ctx, err != nil || resp.StatusCode >= http.StatusInternalServerError)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, dErrors.Wrap(err, dErrors.CodeTimeout, "zgw request timed out").WithDetail(endpoint)
		}
		return 0, dErrors.Wrap(err, dErrors.CodeUnavailable, "zgw request failed").WithDetail(endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, c.statusError(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, dErrors.Wrap(err, dErrors.CodeUnavailable, "read zgw response").WithDetail(endpoint)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, dErrors.Wrap(err, dErrors.CodeUnavailable, "decode zgw response").WithDetail(endpoint)
	}
	return resp.StatusCode, nil
}

func (c *Client) recordOutcome(ctx context.Context, failed bool) {
	if failed {
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "zgw circuit opened", "breaker", c.breaker.Name())
		}
		return
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "zgw circuit closed", "breaker", c.breaker.Name())
	}
}

func (c *Client) statusError(endpoint string, status int) error {
	return dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("zgw responded with status %d", status)).WithDetail(endpoint)
}

// token signs the bearer token the ZGW APIs expect from a client.
func (c *Client) token() (string, error) {
	claims := jwt.MapClaims{
		"iss":                 c.cfg.ClientID,
		"iat":                 c.now().Unix(),
		"client_id":           c.cfg.ClientID,
		"user_id":             c.cfg.ClientID,
		"user_representation": c.cfg.ClientID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.Secret))
}

func (c *Client) finish(span trace.Span, op, outcome string, start time.Time, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if c.metrics != nil {
		c.metrics.ObserveRequest(op, outcome, start)
	}
}
