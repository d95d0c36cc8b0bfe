package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, handler func(req rpcRequest) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jsonrpc", r.URL.Path)
		var req rpcRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result := handler(req)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClient_SearchRead(t *testing.T) {
	srv := newTestServer(t, func(req rpcRequest) any {
		assert.Equal(t, "object", req.Params.Service)
		assert.Equal(t, "execute_kw", req.Params.Method)
		assert.Equal(t, "incentive.event", req.Params.Args[3])
		assert.Equal(t, "search_read", req.Params.Args[4])
		return []map[string]any{
			{"id": 1, "value": 100.0, "event_type_id": []any{6, "ACTIVATION"}},
		}
	})
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, Database: "db", Username: "u", Password: "p", UserID: 2})
	records, err := c.SearchRead(context.Background(), "incentive.event",
		Where("beneficiary_employee_id", "=", 7), []string{"id", "value"}, 0, 80, "id asc")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Int("id"))
	assert.Equal(t, 100.0, records[0].Float("value"))
	assert.Equal(t, "ACTIVATION", records[0].Many2One("event_type_id").DisplayName)
}

func TestClient_SearchRead_DefaultsOrderWhenPaginating(t *testing.T) {
	srv := newTestServer(t, func(req rpcRequest) any {
		kwargs, ok := req.Params.Args[6].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "id desc", kwargs["order"])
		return []map[string]any{}
	})
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, UserID: 2})
	_, err := c.SearchRead(context.Background(), "payg.account", nil, []string{"id"}, 10, 5, "")
	assert.NoError(t, err)
}

func TestClient_SearchCount(t *testing.T) {
	srv := newTestServer(t, func(req rpcRequest) any {
		assert.Equal(t, "search_count", req.Params.Args[4])
		return 42
	})
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, UserID: 2})
	count, err := c.SearchCount(context.Background(), "payg.account", Where("id", ">", 0))
	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestClient_RPCFaultBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":200,"message":"Odoo Server Error","data":{"message":"relation missing"}}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, UserID: 2})
	_, err := c.SearchRead(context.Background(), "x", nil, nil, 0, 1, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "relation missing")
}

func TestClient_Authenticate(t *testing.T) {
	srv := newTestServer(t, func(req rpcRequest) any {
		assert.Equal(t, "common", req.Params.Service)
		assert.Equal(t, "authenticate", req.Params.Method)
		return 9
	})
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, Database: "db", Username: "u", Password: "p"})
	assert.NoError(t, c.Authenticate(context.Background()))
}

func TestClient_CreateAndWrite(t *testing.T) {
	srv := newTestServer(t, func(req rpcRequest) any {
		switch req.Params.Args[4] {
		case "create":
			return 15
		case "write":
			return true
		}
		t.Fatalf("unexpected method %v", req.Params.Args[4])
		return nil
	})
	defer srv.Close()

	c := NewClient(Options{URL: srv.URL, UserID: 2})
	id, err := c.Create(context.Background(), "sms.otp", map[string]any{"name": "123456"})
	assert.NoError(t, err)
	assert.Equal(t, 15, id)

	assert.NoError(t, c.Write(context.Background(), "sms.otp", id, map[string]any{"active": false}))
}
