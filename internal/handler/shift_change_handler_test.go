package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestSwap(t *testing.T, app *fiber.App, token, shiftID, target, reason string) map[string]interface{} {
	t.Helper()
	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/", token, fiber.Map{
		"shift_id":        shiftID,
		"target_username": target,
		"reason":          reason,
	})
	require.Equal(t, http.StatusOK, status)
	return payload["shift_change_request"].(map[string]interface{})
}

func TestCreateShiftChangeRequest(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))

	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	assert.Equal(t, "john", request["requesting_username"])
	assert.Equal(t, "John Doe", request["requesting_name"])
	assert.Equal(t, "jane", request["target_username"])
	assert.Equal(t, "Jane Smith", request["target_name"])
	assert.Equal(t, "pending", request["status"])
	assert.Equal(t, false, request["target_accepted"])
	assert.Equal(t, false, request["admin_approved"])
	assert.Nil(t, request["target_shift_id"])
	assert.Nil(t, request["target_shift_details"])

	details := request["shift_details"].(map[string]interface{})
	assert.Equal(t, "Headquarters", details["branch"])
	assert.Equal(t, "Associate", details["role"])
	assert.NotEmpty(t, details["date"])
	assert.NotEmpty(t, details["time"])
}

func TestCreateWithTargetShiftSnapshotsBoth(t *testing.T) {
	app, _ := setupApp(t)
	johnShift := clockIn(t, app, johnToken(t))
	janeShift := clockIn(t, app, janeToken(t))

	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/", johnToken(t), fiber.Map{
		"shift_id":        johnShift,
		"target_username": "jane",
		"target_shift_id": janeShift,
		"reason":          "trade",
	})
	require.Equal(t, http.StatusOK, status)

	request := payload["shift_change_request"].(map[string]interface{})
	assert.Equal(t, janeShift, request["target_shift_id"])
	targetDetails := request["target_shift_details"].(map[string]interface{})
	assert.Equal(t, "Headquarters", targetDetails["branch"])
}

func TestCreatePreconditions(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))

	cases := []struct {
		name   string
		body   fiber.Map
		status int
		errMsg string
	}{
		{
			name:   "missing reason",
			body:   fiber.Map{"shift_id": shiftID, "target_username": "jane"},
			status: http.StatusBadRequest,
			errMsg: "Missing required fields",
		},
		{
			name:   "missing target",
			body:   fiber.Map{"shift_id": shiftID, "reason": "swap"},
			status: http.StatusBadRequest,
			errMsg: "Missing required fields",
		},
		{
			name:   "unknown target staff",
			body:   fiber.Map{"shift_id": shiftID, "target_username": "ghost", "reason": "swap"},
			status: http.StatusNotFound,
			errMsg: "Target staff not found",
		},
		{
			name:   "unknown source shift",
			body:   fiber.Map{"shift_id": "no-such-shift", "target_username": "jane", "reason": "swap"},
			status: http.StatusNotFound,
			errMsg: "Shift not found",
		},
		{
			name:   "unknown target shift",
			body:   fiber.Map{"shift_id": shiftID, "target_username": "jane", "target_shift_id": "nope", "reason": "swap"},
			status: http.StatusNotFound,
			errMsg: "Target shift not found",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/", johnToken(t), tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.errMsg, payload["error"])
		})
	}
}

func TestTargetDeclines(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"],
		"accept":     false,
	})
	require.Equal(t, http.StatusOK, status)

	updated := payload["shift_change_request"].(map[string]interface{})
	assert.Equal(t, "rejected_by_staff", updated["status"])
	assert.Equal(t, false, updated["target_accepted"])
	assert.NotEmpty(t, updated["target_responded_on"])
}

func TestAcceptThenAdminApproves(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	// jane accepts
	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"],
		"accept":     true,
	})
	require.Equal(t, http.StatusOK, status)
	updated := payload["shift_change_request"].(map[string]interface{})
	assert.Equal(t, "awaiting_admin", updated["status"])
	assert.Equal(t, true, updated["target_accepted"])

	// admin approves
	status, payload = doJSON(t, app, http.MethodPost, "/api/shift-changes/approval", adminToken(t), fiber.Map{
		"request_id": request["id"],
		"approve":    true,
	})
	require.Equal(t, http.StatusOK, status)
	updated = payload["shift_change_request"].(map[string]interface{})
	assert.Equal(t, "approved", updated["status"])
	assert.Equal(t, true, updated["admin_approved"])
	assert.Equal(t, "admin", updated["admin_username"])

	// the underlying shift record is untouched by the approval
	status, payload = doJSON(t, app, http.MethodGet, "/api/shifts/", johnToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	shifts := payload["shifts"].([]interface{})
	require.Len(t, shifts, 1)
	shift := shifts[0].(map[string]interface{})
	assert.Equal(t, "john", shift["username"])
	assert.Nil(t, shift["clock_out_time"])
}

// The snapshot taken at create time is the system of record even after the
// live shift changes.
func TestSnapshotSurvivesShiftMutation(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")
	originalDetails := request["shift_details"].(map[string]interface{})

	// close the shift after the request exists
	status, _ := doJSON(t, app, http.MethodPost, "/api/shifts/clockout", johnToken(t), fiber.Map{
		"shift_id": shiftID, "latitude": 0.0, "longitude": 0.0,
	})
	require.Equal(t, http.StatusOK, status)

	status, payload := doJSON(t, app, http.MethodGet, "/api/shift-changes/", johnToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	requests := payload["shift_change_requests"].([]interface{})
	require.Len(t, requests, 1)
	assert.Equal(t, originalDetails, requests[0].(map[string]interface{})["shift_details"])
}

// The respond endpoint reports a request that targets someone else exactly
// like a missing one.
func TestRespondOnlyByTarget(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", johnToken(t), fiber.Map{
		"request_id": request["id"],
		"accept":     true,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Shift change request not found or not targeted at you", payload["error"])
}

func TestRespondRequiresBooleanFlag(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"],
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid response parameter", payload["error"])
}

func TestRespondTwiceConflicts(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	status, _ := doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"], "accept": false,
	})
	require.Equal(t, http.StatusOK, status)

	// a declined request is terminal; responding again is rejected
	status, _ = doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"], "accept": true,
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAdminCannotDecideBeforeTargetAccepts(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	// still pending
	status, _ := doJSON(t, app, http.MethodPost, "/api/shift-changes/approval", adminToken(t), fiber.Map{
		"request_id": request["id"], "approve": true,
	})
	assert.Equal(t, http.StatusConflict, status)

	// declined by the target
	status, _ = doJSON(t, app, http.MethodPost, "/api/shift-changes/respond", janeToken(t), fiber.Map{
		"request_id": request["id"], "accept": false,
	})
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/shift-changes/approval", adminToken(t), fiber.Map{
		"request_id": request["id"], "approve": true,
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestApprovalRequiresAdmin(t *testing.T) {
	app, _ := setupApp(t)
	shiftID := clockIn(t, app, johnToken(t))
	request := requestSwap(t, app, johnToken(t), shiftID, "jane", "swap")

	status, _ := doJSON(t, app, http.MethodPost, "/api/shift-changes/approval", janeToken(t), fiber.Map{
		"request_id": request["id"], "approve": true,
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestApprovalMissingRequest(t *testing.T) {
	app, _ := setupApp(t)

	status, payload := doJSON(t, app, http.MethodPost, "/api/shift-changes/approval", adminToken(t), fiber.Map{
		"request_id": "no-such-request", "approve": true,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Shift change request not found", payload["error"])
}

func TestListVisibilityCoversBothSides(t *testing.T) {
	app, _ := setupApp(t)
	johnShift := clockIn(t, app, johnToken(t))
	janeShift := clockIn(t, app, janeToken(t))

	requestSwap(t, app, johnToken(t), johnShift, "jane", "john to jane")
	requestSwap(t, app, janeToken(t), janeShift, "john", "jane to john")

	// jane is requester of one and target of the other; she sees both
	status, payload := doJSON(t, app, http.MethodGet, "/api/shift-changes/", janeToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["shift_change_requests"].([]interface{}), 2)

	// the admin sees everything too
	status, payload = doJSON(t, app, http.MethodGet, "/api/shift-changes/", adminToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["shift_change_requests"].([]interface{}), 2)
}
