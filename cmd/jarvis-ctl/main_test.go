package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"plan":{"tool":"PAUSE","params":{}},"confidence":0.9}`))
	}))
	defer srv.Close()

	assert.NoError(t, routeOne(srv.URL, "", "pausa"))
}

func TestRouteOneAgentDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Error(t, routeOne(url, "", "pausa"))
}
