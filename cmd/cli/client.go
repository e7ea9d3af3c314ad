package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/models/dto"
)

// apiClient is a thin HTTP client for the CampusShare API.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the server's response structure with the error field
// included, so failures can be reported with the server's message.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func (c *apiClient) do(method, path string, body any, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		if env.Error != nil {
			return "", fmt.Errorf("%s (%s)", env.Error.Message, env.Error.Code)
		}
		return "", fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decoding response data: %w", err)
		}
	}
	return env.Message, nil
}

func (c *apiClient) registerStudent(name, email string) (*dto.RegisterStudentResponse, error) {
	var out dto.RegisterStudentResponse
	_, err := c.do(http.MethodPost, "/api/v1/students", dto.RegisterStudentRequest{Name: name, Email: email}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) addResource(req dto.AddResourceRequest) (string, *dto.AddResourceResponse, error) {
	var out dto.AddResourceResponse
	message, err := c.do(http.MethodPost, "/api/v1/resources", req, &out)
	if err != nil {
		return "", nil, err
	}
	return message, &out, nil
}

func (c *apiClient) searchResources(query string, threshold *float64) ([]*models.Match, error) {
	params := url.Values{}
	params.Set("query", query)
	if threshold != nil {
		params.Set("threshold", strconv.FormatFloat(*threshold, 'f', -1, 64))
	}

	var out []*models.Match
	_, err := c.do(http.MethodGet, "/api/v1/resources/search?"+params.Encode(), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) processTransaction(resourceID, providerID, receiverID int64) (*dto.ProcessTransactionResponse, error) {
	var out dto.ProcessTransactionResponse
	_, err := c.do(http.MethodPost, "/api/v1/transactions", dto.ProcessTransactionRequest{
		ResourceID: resourceID,
		ProviderID: providerID,
		ReceiverID: receiverID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) listRewards() ([]*models.Reward, error) {
	var out []*models.Reward
	_, err := c.do(http.MethodGet, "/api/v1/rewards", nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) redeemReward(studentID, rewardID int64) (*dto.RedeemRewardResponse, error) {
	var out dto.RedeemRewardResponse
	_, err := c.do(http.MethodPost, "/api/v1/rewards/redeem", dto.RedeemRewardRequest{
		StudentID: studentID,
		RewardID:  rewardID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
