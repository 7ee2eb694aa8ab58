package render

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manayush/ajax-new/internal/client"
	"github.com/manayush/ajax-new/internal/httpclient"
)

func TestFetchError_Reason(t *testing.T) {
	transport := &url.Error{Op: "Get", URL: "https://restcountries.com/v3.1/alpha/DE", Err: errors.New("dial tcp: connection refused")}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("Network down"), "Network down"},
		{"prefix wrappers are peeled", fmt.Errorf("request failed: %w", transport), "dial tcp: connection refused"},
		{"trailing detail is kept", fmt.Errorf("%w: %s", client.ErrNotFound, "ZZ"), "country not found: ZZ"},
		{"status error", &httpclient.StatusError{StatusCode: 503}, "received non-2xx status code: 503"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&FetchError{Err: tt.err}).Reason())
		})
	}
}

func TestFetchError_Message(t *testing.T) {
	cause := fmt.Errorf("request failed: %w", errors.New("Timeout"))

	primary := &FetchError{Stage: StagePrimary, Err: cause}
	neighbors := &FetchError{Stage: StageNeighbors, Err: cause}

	assert.Equal(t, "Error fetching country details: Timeout", primary.Message())
	assert.Equal(t, "Error fetching neighboring countries: Timeout", neighbors.Message())
	assert.False(t, IsRecoverable(primary))
	assert.True(t, IsRecoverable(fmt.Errorf("render: %w", neighbors)))
}
