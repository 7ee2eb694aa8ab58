package render

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/manayush/ajax-new/internal/client"
	"github.com/manayush/ajax-new/internal/domain"
	"github.com/manayush/ajax-new/internal/httpclient"
)

// CountryFetcher defines the external country data source the renderer reads.
// This allows us to mock the client in tests.
type CountryFetcher interface {
	GetCountryByCode(ctx context.Context, code string) ([]*domain.Country, error)
	GetCountriesByCodes(ctx context.Context, codes []string) ([]domain.Neighbor, error)
}

// Renderer fills a Page with one country's details and its neighbors' flags.
type Renderer struct {
	fetcher CountryFetcher
	logger  *slog.Logger
	format  Formatter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithoutEscaping interpolates remote text into markup verbatim.
func WithoutEscaping() Option {
	return func(r *Renderer) {
		r.format.Escape = false
	}
}

// New creates a renderer. Remote text is escaped unless WithoutEscaping is given.
func New(fetcher CountryFetcher, logger *slog.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		fetcher: fetcher,
		logger:  logger,
		format:  Formatter{Escape: true},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render runs the primary lookup for identifier, renders it, then resolves the
// neighbors. Failures are written to page.Error and logged; the returned error
// is informational and the page is always left in a displayable state.
func (r *Renderer) Render(ctx context.Context, identifier string, page *Page) error {
	code := strings.TrimSpace(identifier)
	logger := r.logger.With("country", code, "request_id", page.RequestID)

	if code == "" {
		logger.Error(MsgMissingInput)
		page.Error.SetText(MsgMissingInput)
		return ErrMissingInput
	}

	if page.RequestID != "" {
		ctx = httpclient.WithRequestID(ctx, page.RequestID)
	}

	page.Detail.SetHTML(loadingHTML)

	records, err := r.fetcher.GetCountryByCode(ctx, code)
	if errors.Is(err, client.ErrUnexpectedShape) {
		logger.Error("invalid API response", "error", err)
		page.Error.SetText(MsgInvalidResponse)
		return ErrInvalidResponse
	}
	if err != nil {
		fetchErr := &FetchError{Stage: StagePrimary, Err: err}
		logger.Error("error fetching country details", "error", err)
		page.Error.SetText(fetchErr.Message())
		return fetchErr
	}

	country, ok := domain.First(records)
	if !ok || country == nil {
		logger.Error("invalid API response", "records", len(records))
		page.Error.SetText(MsgInvalidResponse)
		return ErrInvalidResponse
	}

	page.Detail.SetHTML(r.format.Detail(country))
	logger.Debug("rendered country details", "borders", len(country.Borders))

	return r.renderNeighbors(ctx, logger, country.Borders, page)
}

func (r *Renderer) renderNeighbors(ctx context.Context, logger *slog.Logger, borders []string, page *Page) error {
	if len(borders) == 0 {
		page.Neighbors.SetHTML(noNeighborsHTML)
		return nil
	}

	neighbors, err := r.fetcher.GetCountriesByCodes(ctx, borders)
	if err != nil {
		fetchErr := &FetchError{Stage: StageNeighbors, Err: err}
		logger.Error("error fetching neighboring countries", "borders", borders, "error", err)
		page.Error.SetText(fetchErr.Message())
		page.Neighbors.SetHTML(noNeighborsHTML)
		return fetchErr
	}

	page.Neighbors.SetHTML(r.format.Neighbors(neighbors))
	return nil
}
