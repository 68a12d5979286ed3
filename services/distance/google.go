package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"glowdesk/services/scheduling"

	"go.uber.org/zap"
)

const distanceMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// GoogleProvider resolves addresses through the Google Distance Matrix API.
type GoogleProvider struct {
	APIKey       string
	SalonAddress string
	BaseURL      string // empty means the real Distance Matrix endpoint
	Client       *http.Client
	Logger       *zap.Logger
}

// NewGoogleProvider builds a provider with a sane request timeout.
func NewGoogleProvider(apiKey, salonAddress string, logger *zap.Logger) *GoogleProvider {
	return &GoogleProvider{
		APIKey:       apiKey,
		SalonAddress: salonAddress,
		Client:       &http.Client{Timeout: 10 * time.Second},
		Logger:       logger,
	}
}

// distanceMatrixResponse is the slice of the Distance Matrix payload we use.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Seconds int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Resolve looks up the one-way distance and drive time to an address.
func (p *GoogleProvider) Resolve(ctx context.Context, address string) (Travel, error) {
	if address == "" {
		return Travel{}, fmt.Errorf("empty address: %w", scheduling.ErrInvalidInput)
	}

	q := url.Values{}
	q.Set("origins", p.SalonAddress)
	q.Set("destinations", address)
	q.Set("key", p.APIKey)
	base := p.BaseURL
	if base == "" {
		base = distanceMatrixURL
	}
	endpoint := base + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Travel{}, &scheduling.DependencyError{Dependency: "distance provider", Err: err}
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return Travel{}, &scheduling.DependencyError{Dependency: "distance provider", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Travel{}, &scheduling.DependencyError{
			Dependency: "distance provider",
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var payload distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Travel{}, &scheduling.DependencyError{Dependency: "distance provider", Err: err}
	}
	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return Travel{}, &scheduling.DependencyError{
			Dependency: "distance provider",
			Err:        fmt.Errorf("no route in response (status %q)", payload.Status),
		}
	}
	el := payload.Rows[0].Elements[0]
	if el.Status != "OK" {
		// Address not found is the caller's mistake, not an outage.
		return Travel{}, fmt.Errorf("address %q not routable: %w", address, scheduling.ErrInvalidInput)
	}

	travel := Travel{
		Km: float64(el.Distance.Meters) / 1000.0,
		// Minutes round up: a 29m59s drive must block 30 minutes, never 29.
		TravelMinutes: (el.Duration.Seconds + 59) / 60,
	}
	p.Logger.Debug("resolved travel distance",
		zap.String("address", address),
		zap.Float64("km", travel.Km),
		zap.Int("minutes", travel.TravelMinutes))
	return travel, nil
}
