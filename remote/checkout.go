package remote

import (
	"context"
	"errors"
	"net/http"

	"suite46-pickup/models"
)

var errNoCheckoutURL = errors.New("no checkout url returned")

// CheckoutClient creates hosted checkout sessions
type CheckoutClient struct {
	endpoint string
	client   *http.Client
}

func NewCheckoutClient(endpoint string, client *http.Client) *CheckoutClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CheckoutClient{endpoint: endpoint, client: client}
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

// CreateSession returns the URL to send the customer to
func (c *CheckoutClient) CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (string, error) {
	var resp checkoutSessionResponse
	if err := postJSON(ctx, c.client, c.endpoint, req, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", &TransportError{Endpoint: c.endpoint, Err: errNoCheckoutURL}
	}
	return resp.URL, nil
}
