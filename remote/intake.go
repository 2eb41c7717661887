package remote

import (
	"context"
	"net/http"

	"suite46-pickup/models"
)

// IntakeClient posts order records to the order-intake endpoint
type IntakeClient struct {
	endpoint string
	client   *http.Client
}

// NewIntakeClient uses http.DefaultClient when client is nil. Deadlines come
// from the caller's context.
func NewIntakeClient(endpoint string, client *http.Client) *IntakeClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &IntakeClient{endpoint: endpoint, client: client}
}

// Submit sends rec once. The response body is not interpreted.
func (c *IntakeClient) Submit(ctx context.Context, rec models.OrderRecord) error {
	return postJSON(ctx, c.client, c.endpoint, rec, nil)
}
