// Package integrationtest provides server helpers used in end-to-end tests.
package integrationtest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/fund-manager/cmd/httpserver"
	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/middleware"
	"github.com/go-petr/fund-manager/pkg/configpkg"
	"github.com/go-petr/fund-manager/pkg/randompkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

// SetupServer returns a test server with an empty ledger.
func SetupServer(t *testing.T) *httpserver.Server {
	t.Helper()
	return setup(t, false)
}

// SetupDemoServer returns a test server seeded with the demo ledger.
func SetupDemoServer(t *testing.T) *httpserver.Server {
	t.Helper()
	return setup(t, true)
}

func setup(t *testing.T, seed bool) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	config.SeedDemo = seed
	config.IDStrategy = "sequence"

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(logger, config) returned error: %v`, err)
	}

	return server
}

// Do sends a request with an optional JSON body to the server.
func Do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, r)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)

	return recorder
}

// Decode reads the response envelope, decoding its data into data.
func Decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

// SeedBank stores a random bank in the server ledger.
func SeedBank(t *testing.T, server *httpserver.Server) domain.Bank {
	t.Helper()

	b, err := server.Ledger.AddBank(context.Background(), randompkg.CreateBankParams())
	if err != nil {
		t.Fatalf("AddBank() returned error: %v", err)
	}

	return b
}

// SeedObjective stores a random objective of the bank in the server ledger.
func SeedObjective(t *testing.T, server *httpserver.Server, bankID string) domain.Objective {
	t.Helper()

	o, err := server.Ledger.AddObjective(context.Background(), randompkg.CreateObjectiveParams(bankID))
	if err != nil {
		t.Fatalf("AddObjective() returned error: %v", err)
	}

	return o
}
