package webapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRequest(t *testing.T, app *fiber.App, method, target, body string) *Response {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() }) //nolint:errcheck

	var decoded Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	decoded.Status = resp.StatusCode
	return &decoded
}

func makeRequestStatus(t *testing.T, app *fiber.App, method, target, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	return resp.StatusCode
}

func TestInitializeAndGetFunds(t *testing.T) {
	app, _ := SetupTestApp(t)

	resp := makeRequest(t, app, "POST", "/funds/initialize", `{"cash":1000,"wallet":1000}`)
	require.Equal(t, fiber.StatusCreated, resp.Status)

	resp = makeRequest(t, app, "GET", "/funds", "")
	require.Equal(t, fiber.StatusOK, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 1000.0, data["cash"])
	assert.Equal(t, 1000.0, data["wallet"])
	assert.Equal(t, 2000.0, data["total"])
}

func TestGetFundsBeforeInitialize(t *testing.T) {
	app, _ := SetupTestApp(t)

	status := makeRequestStatus(t, app, "GET", "/funds", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTopUpFunds(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 500_00)

	resp := makeRequest(t, app, "POST", "/funds/topup", `{"cash":250.50,"wallet":0}`)
	require.Equal(t, fiber.StatusOK, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 1250.5, data["cash"])
	assert.Equal(t, 500.0, data["wallet"])
}

func TestTopUpNothingRejected(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 500_00)

	status := makeRequestStatus(t, app, "POST", "/funds/topup", `{"cash":0,"wallet":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestTransferFundsVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "cash to wallet",
			body:       `{"direction":"cashToWallet","amount":300}`,
			wantStatus: fiber.StatusOK,
		},
		{
			desc:       "wallet to cash",
			body:       `{"direction":"walletToCash","amount":100}`,
			wantStatus: fiber.StatusOK,
		},
		{
			desc:       "overdraws the source",
			body:       `{"direction":"walletToCash","amount":9999}`,
			wantStatus: fiber.StatusUnprocessableEntity,
		},
		{
			desc:       "unknown direction",
			body:       `{"direction":"sideways","amount":100}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "zero amount",
			body:       `{"direction":"cashToWallet","amount":0}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			app, uow := SetupTestApp(t)
			uow.SeedFunds(1000_00, 500_00)

			status := makeRequestStatus(t, app, "POST", "/funds/transfer", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestTransferMovesValue(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 500_00)

	resp := makeRequest(t, app, "POST", "/funds/transfer", `{"direction":"cashToWallet","amount":300}`)
	require.Equal(t, fiber.StatusOK, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 700.0, data["cash"])
	assert.Equal(t, 800.0, data["wallet"])
}

func TestFundLogsRecordAdjustments(t *testing.T) {
	app, _ := SetupTestApp(t)

	require.Equal(t, fiber.StatusCreated,
		makeRequestStatus(t, app, "POST", "/funds/initialize", `{"cash":1000,"wallet":1000,"description":"opening"}`))
	require.Equal(t, fiber.StatusOK,
		makeRequestStatus(t, app, "POST", "/funds/transfer", `{"direction":"cashToWallet","amount":200}`))

	resp := makeRequest(t, app, "GET", "/funds/logs", "")
	require.Equal(t, fiber.StatusOK, resp.Status)
	entries := resp.Data.([]any)
	require.Len(t, entries, 2)
}
