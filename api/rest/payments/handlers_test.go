package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/payments"
)

// verifier that rejects everything
type failingVerifier struct{}

func (failingVerifier) VerifyPayment(_ context.Context, _ string, _ float64) (*payments.Receipt, error) {
	return nil, payments.ErrVerificationFailed
}

func setupRouter(t *testing.T, verifier payments.Verifier, ledger entitlement.Ledger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	os.Setenv("JWT_SECRET", "test-secret-key-for-testing") //nolint:errcheck // test fixture
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET") //nolint:errcheck // test cleanup
	})

	router := gin.New()
	v1 := router.Group("/api/v1")
	RegisterRoutes(v1, verifier, ledger)

	return router
}

func doProcess(t *testing.T, router *gin.Engine, credential string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/process", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestProcessHandler_Success(t *testing.T) {
	ledger := entitlement.NewMemoryLedger(10)
	router := setupRouter(t, payments.NewStubX402Verifier(), ledger)

	credential, err := auth.GenerateCredential("alice", "0xabc123")
	require.NoError(t, err)

	rec := doProcess(t, router, credential, ProcessRequest{Amount: 0.005, QueryCount: 5})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProcessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.QueriesAdded)
	assert.NotEmpty(t, resp.TransactionHash)

	ent, err := ledger.Entitlement(context.Background(), "alice", entitlement.Today())
	require.NoError(t, err)
	assert.Equal(t, 5, ent.PaidBalance)
}

func TestProcessHandler_NoCredential(t *testing.T) {
	router := setupRouter(t, payments.NewStubX402Verifier(), entitlement.NewMemoryLedger(10))

	rec := doProcess(t, router, "", ProcessRequest{Amount: 0.005, QueryCount: 5})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProcessHandler_NonPositiveQueryCount(t *testing.T) {
	ledger := entitlement.NewMemoryLedger(10)
	router := setupRouter(t, payments.NewStubX402Verifier(), ledger)

	credential, err := auth.GenerateCredential("alice", "0xabc123")
	require.NoError(t, err)

	for _, count := range []int{0, -2} {
		rec := doProcess(t, router, credential, ProcessRequest{Amount: 0.005, QueryCount: count})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "queryCount %d should be rejected", count)
	}
}

func TestProcessHandler_VerificationFailureDoesNotCredit(t *testing.T) {
	ledger := entitlement.NewMemoryLedger(10)
	router := setupRouter(t, failingVerifier{}, ledger)

	credential, err := auth.GenerateCredential("alice", "0xabc123")
	require.NoError(t, err)

	rec := doProcess(t, router, credential, ProcessRequest{Amount: 0.005, QueryCount: 5})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ent, err := ledger.Entitlement(context.Background(), "alice", entitlement.Today())
	require.NoError(t, err)
	assert.Equal(t, 0, ent.PaidBalance, "failed verification must not credit queries")
}

func TestProcessHandler_NoWallet(t *testing.T) {
	ledger := entitlement.NewMemoryLedger(10)
	router := setupRouter(t, payments.NewStubX402Verifier(), ledger)

	// stub verifier requires a wallet address in the credential
	credential, err := auth.GenerateCredential("alice", "")
	require.NoError(t, err)

	rec := doProcess(t, router, credential, ProcessRequest{Amount: 0.005, QueryCount: 5})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
