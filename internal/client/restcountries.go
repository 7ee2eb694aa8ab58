package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/manayush/ajax-new/internal/domain"
	"github.com/manayush/ajax-new/internal/httpclient"
)

// API Docs: https://restcountries.com/#endpoints-code
// Sample request: https://restcountries.com/v3.1/alpha/deu
const (
	DefaultBaseURL = "https://restcountries.com/v3.1"
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrNotFound is returned when the API answers 404 for a code.
	ErrNotFound = errors.New("country not found")
	// ErrUnexpectedShape is returned when a 2xx body is valid JSON but not a
	// sequence of country objects. Syntax errors are not wrapped with it.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// RestCountriesClient interacts with the REST Countries API.
type RestCountriesClient struct {
	http    *httpclient.Client
	BaseURL string
}

// NewRestCountriesClient creates a new client for the REST Countries API.
func NewRestCountriesClient(timeout time.Duration) *RestCountriesClient {
	return &RestCountriesClient{
		http:    httpclient.New(timeout),
		BaseURL: DefaultBaseURL,
	}
}

// GetCountryByCode fetches the records for one alpha-2 or alpha-3 code. The API
// answers with a sequence; callers decide what an empty one means.
func (c *RestCountriesClient) GetCountryByCode(ctx context.Context, code string) ([]*domain.Country, error) {
	endpoint := fmt.Sprintf("%s/alpha/%s", strings.TrimRight(c.BaseURL, "/"), url.PathEscape(code))

	var countries []*domain.Country
	if err := c.get(ctx, endpoint, &countries); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return nil, err
	}
	return countries, nil
}

// GetCountriesByCodes fetches the neighbor summaries for a batch of codes. The
// API silently omits codes it does not know. A 404 or a body of the wrong shape
// yields no neighbors.
func (c *RestCountriesClient) GetCountriesByCodes(ctx context.Context, codes []string) ([]domain.Neighbor, error) {
	joined := domain.JoinCodes(codes)
	if joined == "" {
		return nil, nil
	}

	escaped := make([]string, 0, len(codes))
	for _, code := range strings.Split(joined, ",") {
		escaped = append(escaped, url.QueryEscape(code))
	}
	endpoint := fmt.Sprintf("%s/alpha?codes=%s", strings.TrimRight(c.BaseURL, "/"), strings.Join(escaped, ","))

	var neighbors []domain.Neighbor
	if err := c.get(ctx, endpoint, &neighbors); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnexpectedShape) {
			return nil, nil
		}
		return nil, err
	}
	return neighbors, nil
}

func (c *RestCountriesClient) get(ctx context.Context, endpoint string, out interface{}) error {
	err := c.http.Get(ctx, endpoint, out)
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return err
}
