package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Savora/config"

	"github.com/stretchr/testify/assert"
)

func newTestClient(recipeURL, userURL string) *Client {
	return New(&config.Config{
		Services: &config.Services{
			RecipeBaseURL:  recipeURL,
			UserBaseURL:    userURL,
			TimeoutSeconds: 1,
		},
	})
}

func TestCheckRecipeExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/10", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, Exists, c.CheckRecipe(context.Background(), 10))
}

func TestCheckRecipeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, NotFound, c.CheckRecipe(context.Background(), 10))
}

func TestCheckUnexpectedStatusIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, Unknown, c.CheckRecipe(context.Background(), 10))
}

func TestCheckConnectionFailureIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, Unknown, c.CheckRecipe(context.Background(), 10))
	assert.Equal(t, Unknown, c.CheckUser(context.Background(), 10))
}

func TestCheckUserHitsUserService(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient("http://127.0.0.1:1", srv.URL)
	assert.Equal(t, Exists, c.CheckUser(context.Background(), 2))
	assert.Equal(t, "/2", path)
}
