package webapi

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTransactionVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "cash-in",
			body:       `{"amount":600,"type":"cash-in","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "cash-out",
			body:       `{"amount":300,"type":"cash-out","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "load",
			body:       `{"amount":100,"type":"load","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "fee override",
			body:       `{"amount":600,"type":"cash-in","fee":0,"customer_number":"09171234567"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "unknown type",
			body:       `{"amount":600,"type":"withdraw","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "zero amount",
			body:       `{"amount":0,"type":"cash-in","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "missing customer number",
			body:       `{"amount":600,"type":"cash-in"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "cash-out exceeding the drawer",
			body:       `{"amount":99999,"type":"cash-out","customer_number":"09171234567"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			app, uow := SetupTestApp(t)
			uow.SeedFunds(1000_00, 1000_00)

			status := makeRequestStatus(t, app, "POST", "/transactions", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestProcessCashInMovesBalances(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	resp := makeRequest(t, app, "POST", "/transactions",
		`{"amount":600,"type":"cash-in","customer_number":"09171234567"}`)
	require.Equal(t, fiber.StatusCreated, resp.Status)

	data := resp.Data.(map[string]any)
	tx := data["transaction"].(map[string]any)
	funds := data["funds"].(map[string]any)
	assert.Equal(t, 600.0, tx["amount"])
	assert.Equal(t, 10.0, tx["fee"])
	assert.Equal(t, 1610.0, funds["cash"])
	assert.Equal(t, 400.0, funds["wallet"])
}

func TestReverseTransactionRoundTrip(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	resp := makeRequest(t, app, "POST", "/transactions",
		`{"amount":600,"type":"cash-in","customer_number":"09171234567"}`)
	require.Equal(t, fiber.StatusCreated, resp.Status)
	txID := resp.Data.(map[string]any)["transaction"].(map[string]any)["id"].(string)

	// Preview leaves the balances untouched.
	preview := makeRequest(t, app, "GET", "/transactions/"+txID+"/reversal", "")
	require.Equal(t, fiber.StatusOK, preview.Status)
	previewData := preview.Data.(map[string]any)
	assert.Equal(t, 1000.0, previewData["cash"])
	assert.Equal(t, 1000.0, previewData["wallet"])

	resp = makeRequest(t, app, "POST", "/transactions/"+txID+"/reverse", "")
	require.Equal(t, fiber.StatusOK, resp.Status)
	funds := resp.Data.(map[string]any)["funds"].(map[string]any)
	assert.Equal(t, 1000.0, funds["cash"])
	assert.Equal(t, 1000.0, funds["wallet"])

	// A second reversal is rejected.
	status := makeRequestStatus(t, app, "POST", "/transactions/"+txID+"/reverse", "")
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestReverseUnknownTransaction(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	status := makeRequestStatus(t, app, "POST", "/transactions/"+uuid.NewString()+"/reverse", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status = makeRequestStatus(t, app, "POST", "/transactions/not-a-uuid/reverse", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMarkPaidSettlesPending(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	resp := makeRequest(t, app, "POST", "/transactions",
		`{"amount":300,"type":"cash-out","pending":true,"payee_name":"Aling Nena","customer_number":"09171234567"}`)
	require.Equal(t, fiber.StatusCreated, resp.Status)
	txID := resp.Data.(map[string]any)["transaction"].(map[string]any)["id"].(string)

	status := makeRequestStatus(t, app, "POST", "/transactions/"+txID+"/paid", "")
	require.Equal(t, fiber.StatusOK, status)

	// Settling twice is rejected.
	status = makeRequestStatus(t, app, "POST", "/transactions/"+txID+"/paid", "")
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestDeleteTransactionKeepsBalances(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	resp := makeRequest(t, app, "POST", "/transactions",
		`{"amount":600,"type":"cash-in","customer_number":"09171234567"}`)
	require.Equal(t, fiber.StatusCreated, resp.Status)
	txID := resp.Data.(map[string]any)["transaction"].(map[string]any)["id"].(string)

	status := makeRequestStatus(t, app, "DELETE", "/transactions/"+txID, "")
	require.Equal(t, fiber.StatusOK, status)

	funds := makeRequest(t, app, "GET", "/funds", "")
	data := funds.Data.(map[string]any)
	assert.Equal(t, 1610.0, data["cash"])
	assert.Equal(t, 400.0, data["wallet"])

	status = makeRequestStatus(t, app, "GET", "/transactions/"+txID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListTransactions(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.SeedFunds(1000_00, 1000_00)

	for _, body := range []string{
		`{"amount":600,"type":"cash-in","customer_number":"09171234567"}`,
		`{"amount":100,"type":"load","customer_number":"09181234567"}`,
	} {
		require.Equal(t, fiber.StatusCreated, makeRequestStatus(t, app, "POST", "/transactions", body))
	}

	resp := makeRequest(t, app, "GET", "/transactions", "")
	require.Equal(t, fiber.StatusOK, resp.Status)
	require.Len(t, resp.Data.([]any), 2)
}
