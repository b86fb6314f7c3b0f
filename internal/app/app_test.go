package app_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"insurance_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "admin-password-1"

func decode(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), body)
}

// registerAdmin creates an admin through the API and returns its id and token.
func registerAdmin(t *testing.T, ts *testutil.TestServer, email string) (string, string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admins/register", "", map[string]interface{}{
		"companyName":    "Company of " + email,
		"email":          email,
		"password":       adminPassword,
		"insuranceTypes": []string{"health"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var out struct {
		Admin struct {
			ID string `json:"id"`
		} `json:"admin"`
	}
	decode(t, body, &out)
	return out.Admin.ID, ts.Login(t, email, adminPassword, "admin")
}

func createPolicy(t *testing.T, ts *testutil.TestServer, token, name string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/policies", token, map[string]interface{}{
		"name":           name,
		"category":       "health",
		"coverageAmount": 500000,
		"premium":        1200,
		"features":       []string{"cashless hospitals"},
		"status":         "active",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var out struct {
		ID string `json:"id"`
	}
	decode(t, body, &out)
	return out.ID
}

func applicationBody(userID, policyID string) map[string]interface{} {
	return map[string]interface{}{
		"userId":    userID,
		"policyId":  policyID,
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"documents": map[string]interface{}{
			"identification": map[string]interface{}{"url": "/files/id.pdf", "name": "id.pdf", "size": 100, "type": "application/pdf"},
			"incomeProof":    map[string]interface{}{"url": "/files/pay.pdf", "name": "pay.pdf", "size": 200, "type": "application/pdf"},
		},
	}
}

type adminApplications struct {
	Applications []struct {
		ApplicationID string `json:"applicationId"`
		AdminEmail    string `json:"adminEmail"`
		Status        string `json:"status"`
	} `json:"applications"`
}

func TestApplicationLifecycle(t *testing.T) {
	// 1. Arrange
	ts := testutil.NewTestServer(t)
	_, adminToken := registerAdmin(t, ts, "owner@acme.com")
	policyID := createPolicy(t, ts, adminToken, "Health Basic")

	// 2. Missing income proof is refused
	bad := applicationBody("user-1", policyID)
	bad["documents"] = map[string]interface{}{
		"identification": map[string]interface{}{"url": "/files/id.pdf"},
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", "", bad)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	// 3. Submit
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", "", applicationBody("user-1", policyID))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created struct {
		ApplicationID string `json:"applicationId"`
		SubmittedOn   string `json:"submittedOn"`
	}
	decode(t, body, &created)
	assert.Regexp(t, `^APP-[0-9A-Z]+$`, created.ApplicationID)
	assert.NotEmpty(t, created.SubmittedOn)

	// 4. Fetch never exposes the internal id
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/"+created.ApplicationID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, `"id":`)
	assert.Contains(t, body, `"status":"submitted"`)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/APP-MISSING", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// 5. Approval needs an admin token
	approve := map[string]string{"applicationId": created.ApplicationID}
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", "", approve)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "jdoe", "name": "Jane Doe", "email": "jane@example.com", "password": "user-password-1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	userToken := ts.Login(t, "jane@example.com", "user-password-1", "user")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", userToken, approve)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", adminToken, approve)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true}`, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", adminToken, map[string]string{"applicationId": "APP-MISSING"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// 6. Reject after approve is a conflict
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/reject-application", adminToken, map[string]string{
		"applicationId":   created.ApplicationID,
		"rejectionReason": "changed our mind",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// 7. Dashboard reflects the decision
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var stats struct {
		Applications struct {
			Total    int `json:"total"`
			Approved int `json:"approved"`
		} `json:"applications"`
		ApprovalRate float64 `json:"approvalRate"`
	}
	decode(t, body, &stats)
	assert.Equal(t, 1, stats.Applications.Total)
	assert.Equal(t, 1, stats.Applications.Approved)
	assert.Equal(t, 100.0, stats.ApprovalRate)

	// 8. The user sees the policy name next to the application
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/user-applications?userId=user-1", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"policyName":"Health Basic"`)
}

func TestApplicationOwnerEmailSurvivesReassignment(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, tokenA := registerAdmin(t, ts, "a@acme.com")
	adminB, tokenB := registerAdmin(t, ts, "b@acme.com")
	policyID := createPolicy(t, ts, tokenA, "Family Health")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", "", applicationBody("user-1", policyID))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var listA adminApplications
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/applications?adminEmail=a@acme.com", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	decode(t, body, &listA)
	require.Len(t, listA.Applications, 1)
	assert.Equal(t, "a@acme.com", listA.Applications[0].AdminEmail)

	// Hand the policy to B.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/policies/"+policyID+"/owner", tokenA, map[string]string{"adminId": adminB})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/applications?adminEmail=a@acme.com", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	listA = adminApplications{}
	decode(t, body, &listA)
	require.Len(t, listA.Applications, 1, "existing application stays with the admin it was filed under")
	assert.Equal(t, "a@acme.com", listA.Applications[0].AdminEmail)

	// New submissions follow the new owner.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", "", applicationBody("user-2", policyID))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var listB adminApplications
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/applications", tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	decode(t, body, &listB)
	require.Len(t, listB.Applications, 1)
	assert.Equal(t, "b@acme.com", listB.Applications[0].AdminEmail)

	// One admin cannot read another's list.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/applications?adminEmail=a@acme.com", tokenB, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Nor decide applications filed under the other admin, even after
	// taking over the policy.
	first := listA.Applications[0].ApplicationID
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", tokenB, map[string]string{"applicationId": first})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/approve-application", tokenA, map[string]string{"applicationId": first})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestClaimLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	adminID, adminToken := registerAdmin(t, ts, "claims@acme.com")
	_, otherToken := registerAdmin(t, ts, "other@acme.com")
	policyID := createPolicy(t, ts, adminToken, "Health Plus")

	claim := map[string]interface{}{
		"userId":           "user-1",
		"policyId":         policyID,
		"policyName":       "Health Plus",
		"insuranceCompany": "Acme",
		"incidentDate":     "2024-04-12",
		"claimAmount":      "1500.00",
		"description":      "Hospital stay",
		"documents":        []interface{}{},
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/submit-claim", "", claim)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	claim["documents"] = []map[string]interface{}{
		{"url": "/files/bill.pdf", "name": "bill.pdf", "size": 300, "type": "application/pdf"},
		{"url": "/files/xray.png", "name": "xray.png", "size": 900, "type": "image/png"},
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/submit-claim", "", claim)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created struct {
		ClaimID string `json:"claimId"`
	}
	decode(t, body, &created)
	assert.Regexp(t, `^CL-[0-9A-Z]+$`, created.ClaimID)

	// The admin sees the claim with its documents in order.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/claims?adminEmail=claims@acme.com", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list struct {
		Claims []struct {
			ClaimID     string `json:"claimId"`
			ClaimAmount string `json:"claimAmount"`
			Status      string `json:"status"`
			ReviewNotes string `json:"reviewNotes"`
			Documents   []struct {
				URL string `json:"url"`
			} `json:"documents"`
		} `json:"claims"`
	}
	decode(t, body, &list)
	require.Len(t, list.Claims, 1)
	assert.Equal(t, "1500.00", list.Claims[0].ClaimAmount)
	require.Len(t, list.Claims[0].Documents, 2)
	assert.Equal(t, "/files/bill.pdf", list.Claims[0].Documents[0].URL)
	assert.Equal(t, "/files/xray.png", list.Claims[0].Documents[1].URL)

	// Review: in-review, approved with notes, paid without notes.
	review := func(status string, notes *string) (*http.Response, string) {
		payload := map[string]interface{}{"claimId": created.ClaimID, "status": status, "reviewerId": adminID}
		if notes != nil {
			payload["reviewNotes"] = *notes
		}
		return ts.SendRequest(t, http.MethodPut, "/api/v1/admin/claims", adminToken, payload)
	}
	notes := "Bills verified"

	// Another admin can neither sign as this reviewer nor review this claim.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/claims", adminToken, map[string]interface{}{
		"claimId": created.ClaimID, "status": "in-review", "reviewerId": "someone-else",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/claims", otherToken, map[string]interface{}{
		"claimId": created.ClaimID, "status": "in-review", "reviewerId": adminID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = review("paid", nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = review("in-review", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	res, body = review("approved", &notes)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	res, body = review("paid", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"success":true`)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/claims/"+created.ClaimID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"paid"`)
	assert.Contains(t, body, `"reviewNotes":"Bills verified"`)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/claims", adminToken, map[string]interface{}{
		"claimId": "CL-MISSING", "status": "approved", "reviewerId": adminID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/claims", adminToken, map[string]interface{}{
		"claimId": created.ClaimID, "status": "settled", "reviewerId": adminID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/user-claims?userId=user-1", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.True(t, strings.HasPrefix(body, `{"claims":[`), body)
}

func TestUploadsAndVault(t *testing.T) {
	ts := testutil.NewTestServer(t)
	pdf := []byte("%PDF-1.4 test")

	// Single upload is served back from the local store.
	res, body := ts.SendMultipart(t, "/api/v1/upload", "", nil, testutil.Upload{
		Field: "file", Filename: "id.pdf", ContentType: "application/pdf", Body: pdf,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var single struct {
		Document struct {
			URL  string `json:"url"`
			Name string `json:"name"`
			Size int64  `json:"size"`
			Type string `json:"type"`
		} `json:"document"`
	}
	decode(t, body, &single)
	assert.Equal(t, "id.pdf", single.Document.Name)
	assert.Equal(t, int64(len(pdf)), single.Document.Size)
	assert.Equal(t, "application/pdf", single.Document.Type)
	require.True(t, strings.HasPrefix(single.Document.URL, "/files/"), single.Document.URL)

	res, body = ts.SendRequest(t, http.MethodGet, single.Document.URL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, string(pdf), body)

	// Disallowed type.
	res, body = ts.SendMultipart(t, "/api/v1/upload", "", nil, testutil.Upload{
		Field: "file", Filename: "tool.exe", ContentType: "application/octet-stream", Body: []byte("MZ"),
	})
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)

	// Named application slots.
	res, body = ts.SendMultipart(t, "/api/v1/upload/application", "", nil,
		testutil.Upload{Field: "identification", Filename: "passport.pdf", ContentType: "application/pdf", Body: pdf},
		testutil.Upload{Field: "incomeProof", Filename: "payslip.png", ContentType: "image/png", Body: []byte("png")},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"identification":{"url":"/files/`)

	// Vault requires a token.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/vault", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "vaultuser", "name": "Vault User", "email": "vault@example.com", "password": "user-password-1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	token := ts.Login(t, "vault@example.com", "user-password-1", "user")

	res, body = ts.SendMultipart(t, "/api/v1/vault", token, map[string]string{"category": "medical"}, testutil.Upload{
		Field: "file", Filename: "report.pdf", ContentType: "application/pdf", Body: pdf,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var uploaded struct {
		Document struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"document"`
	}
	decode(t, body, &uploaded)
	assert.Equal(t, "medical", uploaded.Document.Category)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/vault", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, uploaded.Document.ID)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/vault/"+uploaded.Document.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/vault/"+uploaded.Document.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"database":"up"`)
}

func TestSwaggerDocServed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	for _, route := range []string{"/submit-claim", "/user-claims", "/user-applications", "/admin/applications", "/upload/application"} {
		assert.Contains(t, body, `"`+route+`"`)
	}
	assert.Contains(t, body, "Insurance backend API")
}
