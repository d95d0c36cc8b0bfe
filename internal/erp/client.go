package erp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

// Client speaks the record store's JSON-RPC endpoint. It is safe for
// concurrent use; every call is a single request/response round-trip
// bounded by the caller's context deadline.
type Client struct {
	url        string
	db         string
	username   string
	password   string
	uid        int64
	httpClient *http.Client
	nextID     atomic.Int64
}

type Options struct {
	URL      string
	Database string
	Username string
	Password string
	// UserID skips the authenticate round-trip when already known.
	UserID  int
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		url:        opts.URL,
		db:         opts.Database,
		username:   opts.Username,
		password:   opts.Password,
		httpClient: &http.Client{Timeout: timeout},
	}
	c.uid = int64(opts.UserID)
	return c
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (e *rpcError) Error() string {
	if e.Data != nil {
		if msg, ok := e.Data["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return e.Message
}

// Authenticate resolves the uid for the configured credentials. It is a
// no-op when the uid was provided up front.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.uid != 0 {
		return nil
	}
	var uid int64
	err := c.call(ctx, "common", "authenticate",
		[]any{c.db, c.username, c.password, map[string]any{}}, &uid)
	if err != nil {
		return err
	}
	if uid == 0 {
		return apperror.New(apperror.CodeUpstreamError,
			"record store rejected the configured credentials", http.StatusInternalServerError)
	}
	atomic.StoreInt64(&c.uid, uid)
	return nil
}

// ExecuteKw performs a generic model method call.
func (c *Client) ExecuteKw(ctx context.Context, model, method string, args []any, kwargs map[string]any, out any) error {
	callArgs := []any{c.db, atomic.LoadInt64(&c.uid), c.password, model, method, args}
	if kwargs != nil {
		callArgs = append(callArgs, kwargs)
	}
	return c.call(ctx, "object", "execute_kw", callArgs, out)
}

// SearchRead fetches records matching the domain. A limit of -1 means
// unlimited; offset without an explicit order falls back to "id desc"
// so pages stay stable.
func (c *Client) SearchRead(ctx context.Context, model string, domain Domain, fields []string, offset, limit int, order string) ([]Record, error) {
	kwargs := map[string]any{
		"fields": fields,
		"offset": offset,
	}
	if offset > 0 && order == "" {
		order = "id desc"
	}
	if order != "" {
		kwargs["order"] = order
	}
	if limit != -1 {
		kwargs["limit"] = limit
	}

	var records []Record
	if err := c.ExecuteKw(ctx, model, "search_read", []any{domain.args()}, kwargs, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchCount returns the full matching-set size for the domain,
// independent of any offset/limit.
func (c *Client) SearchCount(ctx context.Context, model string, domain Domain) (int, error) {
	var count int
	if err := c.ExecuteKw(ctx, model, "search_count", []any{domain.args()}, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *Client) Create(ctx context.Context, model string, values map[string]any) (int, error) {
	var id int
	if err := c.ExecuteKw(ctx, model, "create", []any{values}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *Client) Write(ctx context.Context, model string, id int, values map[string]any) error {
	var ok bool
	return c.ExecuteKw(ctx, model, "write", []any{[]int{id}, values}, nil, &ok)
}

func (c *Client) Unlink(ctx context.Context, model string, ids []int) error {
	var ok bool
	return c.ExecuteKw(ctx, model, "unlink", []any{ids}, nil, &ok)
}

func (c *Client) call(ctx context.Context, service, method string, args []any, out any) error {
	reqBody := rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      c.nextID.Add(1),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "encode rpc request", http.StatusInternalServerError)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/jsonrpc", bytes.NewReader(payload))
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "build rpc request", http.StatusInternalServerError)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamError, "record store unreachable", http.StatusInternalServerError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperror.New(apperror.CodeUpstreamError,
			fmt.Sprintf("record store returned status %d", resp.StatusCode), http.StatusInternalServerError)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamError, "malformed record store response", http.StatusInternalServerError)
	}
	if rpcResp.Error != nil {
		zap.L().Error("record store rpc fault",
			zap.String("service", service),
			zap.String("method", method),
			zap.String("fault", rpcResp.Error.Error()),
		)
		return apperror.Wrap(rpcResp.Error, apperror.CodeUpstreamError, rpcResp.Error.Error(), http.StatusInternalServerError)
	}

	if out != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return apperror.Wrap(err, apperror.CodeUpstreamError, "malformed record store result", http.StatusInternalServerError)
		}
	}
	return nil
}
