package interaction

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-service/internal/domain"
	"content-service/internal/infra/upstream"
)

const testEndpoint = "https://interaction.example.com/contents"

func newTestClient() *Client {
	cfg := upstream.ClientConfig{
		BaseURL: "https://interaction.example.com",
		Timeout: 5 * time.Second,
		Retry: upstream.RetryConfig{
			MaxAttempts: 0,
		},
		CB: upstream.CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.9,
		},
	}
	client := New(cfg, zap.NewNop())

	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func TestFetchEngagementPage_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	payload := []engagementItem{
		{Title: "top_story", TotalReads: 1200, TotalLikes: 300},
		{Title: "runner_up", TotalReads: 800, TotalLikes: 120},
	}
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewJsonResponderOrPanic(200, payload))

	client := newTestClient()
	records, err := client.FetchEngagementPage(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "top_story", records[0].Title)
	assert.Equal(t, 1200, records[0].TotalReads)
	assert.Equal(t, 300, records[0].TotalLikes)
	assert.Equal(t, "runner_up", records[1].Title)
}

func TestFetchEngagementPage_SendsPageAndInternalHeader(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "3", req.URL.Query().Get("page"))
			assert.Equal(t, upstream.InternalHeaderValue, req.Header.Get(upstream.InternalHeader))

			return httpmock.NewJsonResponse(200, []engagementItem{})
		})

	client := newTestClient()
	records, err := client.FetchEngagementPage(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, records, "an empty page is a success, not a failure")
}

func TestFetchEngagementPage_NonSuccessIsHardFailure(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	for _, status := range []int{400, 404, 500, 503} {
		httpmock.Reset()
		httpmock.RegisterResponder("GET", testEndpoint,
			httpmock.NewStringResponder(status, "nope"))

		client := newTestClient()
		records, err := client.FetchEngagementPage(context.Background(), 1)

		require.Error(t, err, "status %d must be a hard failure", status)
		assert.True(t, errors.Is(err, domain.ErrInteractionUnavailable))
		assert.Nil(t, records)
	}
}

func TestFetchEngagementPage_NetworkError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewErrorResponder(errors.New("connection refused")))

	client := newTestClient()
	_, err := client.FetchEngagementPage(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInteractionUnavailable))
}
