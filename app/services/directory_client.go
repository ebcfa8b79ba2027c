package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amirphl/super-niche-selector/utils"
	"golang.org/x/sync/singleflight"
)

// DefaultRestCountriesURL is the public directory endpoint host
const DefaultRestCountriesURL = "https://restcountries.com"

// RestCountriesClient reads countries and their languages from the REST Countries API.
// Concurrent Countries and Languages calls share one HTTP request.
type RestCountriesClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration

	group singleflight.Group
}

func NewRestCountriesClient(baseURL string, timeout time.Duration) *RestCountriesClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultRestCountriesURL
	}
	return &RestCountriesClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Timeout:    timeout,
	}
}

func (c *RestCountriesClient) Name() string { return "restcountries" }

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Languages map[string]string `json:"languages"`
}

// Countries returns the common names of every country, sorted
func (c *RestCountriesClient) Countries(ctx context.Context) ([]string, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for _, rc := range all {
		names = append(names, rc.Name.Common)
	}
	return utils.UniqueSorted(names), nil
}

// Languages returns the union of every country's languages, deduplicated and sorted
func (c *RestCountriesClient) Languages(ctx context.Context) ([]string, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	var langs []string
	for _, rc := range all {
		for _, l := range rc.Languages {
			langs = append(langs, l)
		}
	}
	return utils.UniqueSorted(langs), nil
}

func (c *RestCountriesClient) fetchAll(ctx context.Context) ([]restCountry, error) {
	v, err, _ := c.group.Do("all", func() (any, error) {
		return c.doFetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]restCountry), nil
}

func (c *RestCountriesClient) doFetch(ctx context.Context) ([]restCountry, error) {
	url := c.BaseURL + "/v3.1/all?fields=name,languages"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("restcountries returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode restcountries response: %w", err)
	}
	return out, nil
}
