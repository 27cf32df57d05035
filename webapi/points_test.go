package webapi

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"card_number":"6033-1234","name":"Maria Santos","phone":"09171234567"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "missing card number",
			body:       `{"name":"Maria Santos"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "missing name",
			body:       `{"card_number":"6033-1234"}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			app, _ := SetupTestApp(t)

			status := makeRequestStatus(t, app, "POST", "/customers", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestRegisterDuplicateCardRejected(t *testing.T) {
	app, _ := SetupTestApp(t)

	body := `{"card_number":"6033-1234","name":"Maria Santos"}`
	require.Equal(t, fiber.StatusCreated, makeRequestStatus(t, app, "POST", "/customers", body))

	status := makeRequestStatus(t, app, "POST", "/customers", body)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestAccruePoints(t *testing.T) {
	app, _ := SetupTestApp(t)

	require.Equal(t, fiber.StatusCreated, makeRequestStatus(t, app, "POST", "/customers",
		`{"card_number":"6033-1234","name":"Maria Santos"}`))

	resp := makeRequest(t, app, "POST", "/points/accrue", `{"card_number":"6033-1234","amount":3000}`)
	require.Equal(t, fiber.StatusOK, resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "3", data["earned"])
	assert.Equal(t, "3", data["balance"])

	status := makeRequestStatus(t, app, "POST", "/points/accrue", `{"card_number":"9999","amount":3000}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListCustomers(t *testing.T) {
	app, _ := SetupTestApp(t)

	require.Equal(t, fiber.StatusCreated, makeRequestStatus(t, app, "POST", "/customers",
		`{"card_number":"6033-1234","name":"Maria Santos"}`))

	resp := makeRequest(t, app, "GET", "/customers", "")
	require.Equal(t, fiber.StatusOK, resp.Status)
	require.Len(t, resp.Data.([]any), 1)
}
