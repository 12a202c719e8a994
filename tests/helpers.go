//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseURL string

func init() {
	baseURL = os.Getenv("TEST_SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// uniqueEmail returns an email address that will not collide across test runs.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), rand.Intn(10000))
}

// doRequest sends a JSON request and decodes the JSON response body into out
// when out is non-nil. It returns the HTTP status code.
func doRequest(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	require.NoError(t, err, "failed to build request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err, "request failed: %s %s", method, path)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out),
			"failed to decode response from %s %s: %s", method, path, string(raw))
	}

	return resp.StatusCode
}

func doPost(t *testing.T, path string, body interface{}, out interface{}) int {
	t.Helper()
	return doRequest(t, http.MethodPost, path, body, out)
}

func doGet(t *testing.T, path string, out interface{}) int {
	t.Helper()
	return doRequest(t, http.MethodGet, path, nil, out)
}

// founderResponse mirrors the founder JSON returned by the API.
type founderResponse struct {
	ID                     string          `json:"id"`
	Email                  string          `json:"email"`
	Name                   string          `json:"name"`
	ReferralCode           string          `json:"referral_code"`
	Status                 string          `json:"status"`
	PayoutMethod           string          `json:"payout_method"`
	PendingBalance         decimal.Decimal `json:"pending_balance"`
	TotalCommissionsEarned decimal.Decimal `json:"total_commissions_earned"`
	TotalCommissionsPaid   decimal.Decimal `json:"total_commissions_paid"`
	TotalMemberReferrals   int             `json:"total_member_referrals"`
	TotalProviderReferrals int             `json:"total_provider_referrals"`
}

type referralResponse struct {
	ID            string `json:"id"`
	FounderID     string `json:"founder_id"`
	ReferredEmail string `json:"referred_email"`
	ReferredType  string `json:"referred_type"`
	Status        string `json:"status"`
}

type commissionResponse struct {
	ID             string          `json:"id"`
	FounderID      string          `json:"founder_id"`
	CommissionType string          `json:"commission_type"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
}

type payoutResponse struct {
	ID           string          `json:"id"`
	FounderID    string          `json:"founder_id"`
	PayoutPeriod string          `json:"payout_period"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

type balanceResponse struct {
	FounderID      string          `json:"founder_id"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// enrollFounder creates a founder account and returns it.
func enrollFounder(t *testing.T, name string) founderResponse {
	t.Helper()

	var founder founderResponse
	status := doPost(t, "/api/founders", map[string]interface{}{
		"email":         uniqueEmail("founder"),
		"name":          name,
		"payout_method": "paypal",
	}, &founder)
	require.Equal(t, http.StatusCreated, status, "founder enrollment failed")
	require.NotEmpty(t, founder.ID)
	require.Len(t, founder.ReferralCode, 8)
	return founder
}

// registerActiveReferral registers a referral against the founder's code and
// activates it, returning the referred email.
func registerActiveReferral(t *testing.T, founder founderResponse) (referralResponse, string) {
	t.Helper()

	referredEmail := uniqueEmail("member")
	var referral referralResponse
	status := doPost(t, "/api/referrals", map[string]interface{}{
		"referral_code":  founder.ReferralCode,
		"referred_email": referredEmail,
		"referred_type":  "member",
	}, &referral)
	require.Equal(t, http.StatusCreated, status, "referral registration failed")

	var activated referralResponse
	status = doPost(t, fmt.Sprintf("/api/referrals/%s/activate", referral.ID), nil, &activated)
	require.Equal(t, http.StatusOK, status, "referral activation failed")
	require.Equal(t, "active", activated.Status)

	return activated, referredEmail
}

// accrueCommission credits a commission to the founder via the API.
func accrueCommission(t *testing.T, founderID, amount string) commissionResponse {
	t.Helper()

	var commission commissionResponse
	status := doPost(t, "/api/commissions", map[string]interface{}{
		"founder_id":      founderID,
		"commission_type": "bid_pack",
		"amount":          amount,
	}, &commission)
	require.Equal(t, http.StatusCreated, status, "commission accrual failed")
	return commission
}

// getBalance fetches a founder's pending balance.
func getBalance(t *testing.T, founderID string) decimal.Decimal {
	t.Helper()

	var balance balanceResponse
	status := doGet(t, fmt.Sprintf("/api/founders/%s/balance", founderID), &balance)
	require.Equal(t, http.StatusOK, status, "balance fetch failed")
	return balance.PendingBalance
}
