package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ../../test/storeclient_mock.go . StoreClient

// StoreClient is the transport boundary towards the remote entity
// store. It returns raw response envelopes and reports transport and
// API level failures, but does not interpret entity semantics.
type StoreClient interface {
	CreateEntity(ctx context.Context, kind string, payload []byte) (json.RawMessage, error)
	FetchEntities(ctx context.Context, entityIDs []string, attributes []string) (json.RawMessage, error)
	RemoveEntity(ctx context.Context, title string) error
}

// APIError is an error that the remote store reported in a well formed
// response body, as opposed to a failure of the transport itself.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Info)
}

func Debug(enabled string) func(*wbClient) {
	return func(c *wbClient) {
		c.debug = (enabled == "true")
	}
}

func AccessToken(token string) func(*wbClient) {
	return func(c *wbClient) {
		c.accessToken = token
	}
}

func NewStoreClient(apiURL string, options ...func(*wbClient)) StoreClient {
	c := &wbClient{
		apiURL: apiURL,
		debug:  false,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeEntityKind string = "entity-kind"
	TraceAttributeEntityIDs  string = "entity-ids"
	TraceAttributePageTitle  string = "page-title"
)

var tracer = otel.Tracer("wikibase-store-client")

type wbClient struct {
	apiURL      string
	accessToken string
	debug       bool

	tokenMu   sync.Mutex
	editToken string
}

func (c *wbClient) CreateEntity(ctx context.Context, kind string, payload []byte) (json.RawMessage, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-entity",
		trace.WithAttributes(attribute.String(TraceAttributeEntityKind, kind)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.csrfToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "wbeditentity")
	params.Set("new", kind)
	params.Set("data", string(payload))
	params.Set("token", token)

	body, err := c.callAction(ctx, http.MethodPost, params)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (c *wbClient) FetchEntities(ctx context.Context, entityIDs []string, attributes []string) (json.RawMessage, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-entities",
		trace.WithAttributes(attribute.String(TraceAttributeEntityIDs, strings.Join(entityIDs, "|"))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", strings.Join(entityIDs, "|"))

	if len(attributes) > 0 {
		params.Set("props", strings.Join(attributes, "|"))
	}

	body, err := c.callAction(ctx, http.MethodGet, params)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (c *wbClient) RemoveEntity(ctx context.Context, title string) error {
	var err error

	ctx, span := tracer.Start(ctx, "remove-entity",
		trace.WithAttributes(attribute.String(TraceAttributePageTitle, title)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.csrfToken(ctx)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("action", "delete")
	params.Set("title", title)
	params.Set("token", token)

	_, err = c.callAction(ctx, http.MethodPost, params)
	return err
}

// csrfToken returns the cached edit token, fetching it from the store
// on first use. Edits and deletions are rejected without one.
func (c *wbClient) csrfToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.editToken != "" {
		return c.editToken, nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("meta", "tokens")
	params.Set("type", "csrf")

	body, err := c.callAction(ctx, http.MethodGet, params)
	if err != nil {
		return "", err
	}

	response := struct {
		Query struct {
			Tokens struct {
				CSRFToken string `json:"csrftoken"`
			} `json:"tokens"`
		} `json:"query"`
	}{}

	err = json.Unmarshal(body, &response)
	if err != nil || response.Query.Tokens.CSRFToken == "" {
		return "", fmt.Errorf("store did not provide a csrf token: %s", string(body))
	}

	c.editToken = response.Query.Tokens.CSRFToken
	return c.editToken, nil
}

func (c *wbClient) callAction(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	params.Set("format", "json")

	var body io.Reader
	endpoint := c.apiURL

	if method == http.MethodPost {
		body = strings.NewReader(params.Encode())
	} else {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store returned status code %d (body: %s)", resp.StatusCode, string(respBody))
	}

	// the action api reports errors in a 200 response
	apiErr := struct {
		Error *APIError `json:"error"`
	}{}

	if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != nil {
		return nil, apiErr.Error
	}

	return respBody, nil
}
