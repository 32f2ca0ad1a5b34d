//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"residesk/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	c.Session().Set("access-token", "refresh-token")
	return c, srv
}

func passInput() client.CreatePassInput {
	visit := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return client.CreatePassInput{
		Name:       "Asha Verma",
		Contact:    "9876543210",
		Purpose:    "Delivery",
		FlatNumber: "B-402",
		VisitDate:  visit,
		StartTime:  time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC),
	}
}

func TestGeneratePassCode(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	code := client.GeneratePassCode("Asha Verma", "B-402", now)
	assert.Equal(t, "Asha Verma-B-402-"+strconv.FormatInt(now.UnixMilli(), 10), code)

	later := client.GeneratePassCode("Asha Verma", "B-402", now.Add(time.Millisecond))
	assert.NotEqual(t, code, later)
}

func TestGenerateNumericCode(t *testing.T) {
	for range 1000 {
		code := client.GenerateNumericCode()
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestCreatePass(t *testing.T) {
	ctx := context.Background()

	t.Run("sends generated codes and composed window", func(t *testing.T) {
		var got map[string]any
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/visitors", r.URL.Path)
			require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     "pass-1",
				"name":   got["name"],
				"qrCode": got["qrCode"],
				"status": "pending",
			})
		}))

		visitor, err := c.CreatePass(ctx, passInput())
		require.NoError(t, err)
		assert.Equal(t, "pending", visitor.Status)

		qr, _ := got["qrCode"].(string)
		assert.True(t, strings.HasPrefix(qr, "Asha Verma-B-402-"))
		numeric, _ := got["numericCode"].(string)
		assert.Len(t, numeric, 6)

		start, err := time.Parse(time.RFC3339, got["startTime"].(string))
		require.NoError(t, err)
		end, err := time.Parse(time.RFC3339, got["endTime"].(string))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), end)
	})

	t.Run("invalid input sends no request", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		mutations := []func(*client.CreatePassInput){
			func(in *client.CreatePassInput) { in.Name = "" },
			func(in *client.CreatePassInput) { in.Contact = "   " },
			func(in *client.CreatePassInput) { in.Purpose = "" },
			func(in *client.CreatePassInput) { in.FlatNumber = "" },
			func(in *client.CreatePassInput) { in.VisitDate = time.Time{} },
			func(in *client.CreatePassInput) { in.EndTime = in.StartTime },
			func(in *client.CreatePassInput) { in.StartTime, in.EndTime = in.EndTime, in.StartTime },
		}
		for _, mutate := range mutations {
			in := passInput()
			mutate(&in)
			_, err := c.CreatePass(ctx, in)
			var verr *client.ValidationError
			assert.ErrorAs(t, err, &verr)
		}
		assert.Zero(t, calls.Load(), "validation failures must not reach the server")
	})

	t.Run("no session sends no request", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		c.Logout()

		_, err := c.CreatePass(ctx, passInput())
		assert.ErrorIs(t, err, client.ErrNotAuthenticated)
		assert.Zero(t, calls.Load())
	})

	t.Run("duplicate code surfaces the server conflict", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Pass code already exists"})
		}))

		_, err := c.CreatePass(ctx, passInput())
		var remote *client.RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, http.StatusConflict, remote.Status)
		assert.Equal(t, "Pass code already exists", remote.Message)
	})
}

func TestValidatePass(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted scan", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/visitors/validate", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"expired": false,
				"visitor": map[string]any{"id": "pass-1", "flatNumber": "B-402"},
			})
		}))

		outcome, err := c.ValidatePass(ctx, "Asha Verma-B-402-1767857400000")
		require.NoError(t, err)
		assert.True(t, outcome.Accepted)
		require.NotNil(t, outcome.Visitor)
		assert.Equal(t, "B-402", outcome.Visitor.FlatNumber)
	})

	t.Run("rejected scan is not an error", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"expired": true, "reason": "expired"})
		}))

		outcome, err := c.ValidatePass(ctx, "482913")
		require.NoError(t, err)
		assert.False(t, outcome.Accepted)
		assert.Equal(t, "expired", outcome.Reason)
		assert.Nil(t, outcome.Visitor)
	})

	t.Run("submits the code exactly once even on failure", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
		}))

		_, err := c.ValidatePass(ctx, "482913")
		var remote *client.RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, int32(1), calls.Load(), "a failed validation must never be retried")
	})

	t.Run("blank code sends no request", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := c.ValidatePass(ctx, "   ")
		var verr *client.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Zero(t, calls.Load())
	})
}

func TestMyPasses(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/visitors", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "pass-1", "status": "pending"},
			{"id": "pass-2", "status": "consumed"},
		})
	}))

	visitors, err := c.MyPasses(context.Background())
	require.NoError(t, err)
	require.Len(t, visitors, 2)
	assert.Equal(t, "consumed", visitors[1].Status)
}
