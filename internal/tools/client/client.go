// Package client is the HTTP client for the tool service consumed by
// the chat orchestrator.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smartcars-insurance/internal/model"
	"smartcars-insurance/internal/rating"
)

const defaultTimeout = 10 * time.Second

// IClient is the tool-service surface used by the orchestrator.
type IClient interface {
	GetInsuranceRequest(ctx context.Context, emailOrID string) (model.InsuranceRequest, error)
	GetDriverProfile(ctx context.Context, nationalID string) (model.DriverProfile, error)
	GetCarInfo(ctx context.Context, plate string) (model.CarInfo, error)
	GetCarModelPrice(ctx context.Context, modelName string) (model.ModelPrice, error)
	CalculateRisk(ctx context.Context, age, infractionsCount int) (float64, error)
	CalculateVehicleFactor(ctx context.Context, year int, price float64) (float64, error)
	CalculatePremium(ctx context.Context, risk, vehicleFactor float64, plan model.Plan) (rating.Quote, error)
}

// Client talks to the tool service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ IClient = (*Client)(nil)

// New creates a tool-service client. timeout <= 0 uses the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// post sends a JSON body to a tool endpoint and decodes the response
// into target. A 404 maps to ErrNotFound so callers can distinguish a
// store miss from a transport failure.
func (c *Client) post(ctx context.Context, tool string, reqBody, target any) error {
	url := fmt.Sprintf("%s/tools/%s", c.baseURL, tool)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", tool, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", tool, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call tool %s: %w", tool, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("tool %s: %w", tool, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tool %s error %d: %s", tool, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", tool, err)
	}
	return nil
}

func (c *Client) GetInsuranceRequest(ctx context.Context, emailOrID string) (model.InsuranceRequest, error) {
	var out model.InsuranceRequest
	err := c.post(ctx, "get_insurance_request", map[string]string{"emailOrId": emailOrID}, &out)
	return out, err
}

func (c *Client) GetDriverProfile(ctx context.Context, nationalID string) (model.DriverProfile, error) {
	var out model.DriverProfile
	err := c.post(ctx, "get_driver_profile", map[string]string{"nationalId": nationalID}, &out)
	return out, err
}

func (c *Client) GetCarInfo(ctx context.Context, plate string) (model.CarInfo, error) {
	var out model.CarInfo
	err := c.post(ctx, "get_car_info", map[string]string{"plate": plate}, &out)
	return out, err
}

func (c *Client) GetCarModelPrice(ctx context.Context, modelName string) (model.ModelPrice, error) {
	var out model.ModelPrice
	err := c.post(ctx, "get_car_model_price", map[string]string{"model": modelName}, &out)
	return out, err
}

func (c *Client) CalculateRisk(ctx context.Context, age, infractionsCount int) (float64, error) {
	var out struct {
		Risk float64 `json:"risk"`
	}
	err := c.post(ctx, "calculate_risk", map[string]int{
		"age":              age,
		"infractionsCount": infractionsCount,
	}, &out)
	return out.Risk, err
}

func (c *Client) CalculateVehicleFactor(ctx context.Context, year int, price float64) (float64, error) {
	var out struct {
		VehicleFactor float64 `json:"vehicleFactor"`
	}
	err := c.post(ctx, "calculate_vehicle_factor", map[string]any{
		"year":  year,
		"price": price,
	}, &out)
	return out.VehicleFactor, err
}

func (c *Client) CalculatePremium(ctx context.Context, risk, vehicleFactor float64, plan model.Plan) (rating.Quote, error) {
	var out rating.Quote
	err := c.post(ctx, "calculate_insurance_premium", map[string]any{
		"risk":          risk,
		"vehicleFactor": vehicleFactor,
		"plan":          plan,
	}, &out)
	return out, err
}
