package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restCountriesFixture = `[
	{"name":{"common":"Canada","official":"Canada"},"languages":{"eng":"English","fra":"French"}},
	{"name":{"common":"Belgium"},"languages":{"deu":"German","fra":"French","nld":"Dutch"}},
	{"name":{"common":"Antarctica"},"languages":{}},
	{"name":{"common":"Canada"},"languages":{"eng":"English"}}
]`

func newRestCountriesServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	var (
		mu   sync.Mutex
		hits int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()

		assert.Equal(t, "/v3.1/all", r.URL.Path)
		assert.Equal(t, "name,languages", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestRestCountriesClient_Countries(t *testing.T) {
	srv, _ := newRestCountriesServer(t, http.StatusOK, restCountriesFixture)
	client := NewRestCountriesClient(srv.URL+"/", 2*time.Second)

	countries, err := client.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Antarctica", "Belgium", "Canada"}, countries)
}

func TestRestCountriesClient_Languages(t *testing.T) {
	srv, _ := newRestCountriesServer(t, http.StatusOK, restCountriesFixture)
	client := NewRestCountriesClient(srv.URL, 2*time.Second)

	languages, err := client.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dutch", "English", "French", "German"}, languages)
}

func TestRestCountriesClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`},
		{name: "malformed body", status: http.StatusOK, body: `{"not":"a list"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRestCountriesServer(t, tt.status, tt.body)
			client := NewRestCountriesClient(srv.URL, 2*time.Second)

			_, err := client.Countries(context.Background())
			assert.Error(t, err)
			_, err = client.Languages(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRestCountriesClient_ConcurrentCallsShareFetch(t *testing.T) {
	srv, hits := newRestCountriesServer(t, http.StatusOK, restCountriesFixture)
	client := NewRestCountriesClient(srv.URL, 2*time.Second)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := client.Countries(context.Background())
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := client.Languages(context.Background())
		assert.NoError(t, err)
	}()
	wg.Wait()

	assert.GreaterOrEqual(t, *hits, 1)
	assert.LessOrEqual(t, *hits, 2)
}

func TestNewRestCountriesClient_Defaults(t *testing.T) {
	client := NewRestCountriesClient("", 0)
	assert.Equal(t, DefaultRestCountriesURL, client.BaseURL)
	assert.Equal(t, 10*time.Second, client.Timeout)
	assert.Equal(t, "restcountries", client.Name())
}
