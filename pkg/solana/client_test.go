package solana

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      int               `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type rpcHandler func(params []json.RawMessage) (result interface{}, rpcErr map[string]interface{})

type rpcServer struct {
	sync.Mutex
	handlers map[string]rpcHandler
	calls    map[string]int
}

func newTestRPCServer(t *testing.T, handlers map[string]rpcHandler) (*rpcServer, string) {
	s := &rpcServer{
		handlers: handlers,
		calls:    make(map[string]int),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		s.Lock()
		s.calls[req.Method]++
		handler, ok := s.handlers[req.Method]
		s.Unlock()

		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		if !ok {
			resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
		} else {
			result, rpcErr := handler(req.Params)
			if rpcErr != nil {
				resp["error"] = rpcErr
			} else {
				resp["result"] = result
			}
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	return s, srv.URL
}

func (s *rpcServer) callCount(method string) int {
	s.Lock()
	defer s.Unlock()
	return s.calls[method]
}

func TestSignatureStatus(t *testing.T) {
	zero, one := 0, 1

	testCases := []struct {
		s         SignatureStatus
		confirmed bool
		finalized bool
	}{
		{
			s: SignatureStatus{Slot: 10, Confirmations: &zero},
		},
		{
			s: SignatureStatus{Slot: 10, Confirmations: &zero, ConfirmationStatus: "random"},
		},
		{
			s: SignatureStatus{Slot: 10, Confirmations: &zero, ConfirmationStatus: confirmationStatusProcessed},
		},
		{
			s:         SignatureStatus{Slot: 10, Confirmations: &one},
			confirmed: true,
		},
		{
			s:         SignatureStatus{Slot: 10, Confirmations: &zero, ConfirmationStatus: confirmationStatusConfirmed},
			confirmed: true,
		},
		{
			s:         SignatureStatus{Slot: 10, Confirmations: &zero, ConfirmationStatus: confirmationStatusFinalized},
			confirmed: true,
			finalized: true,
		},
		{
			s:         SignatureStatus{Slot: 10},
			confirmed: true,
			finalized: true,
		},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.confirmed, tc.s.Confirmed(), i)
		assert.Equal(t, tc.finalized, tc.s.Finalized(), i)

		assert.True(t, tc.s.Reached(CommitmentProcessed), i)
		assert.Equal(t, tc.confirmed, tc.s.Reached(CommitmentConfirmed), i)
		assert.Equal(t, tc.finalized, tc.s.Reached(CommitmentFinalized), i)
		assert.False(t, tc.s.Reached(Commitment{Commitment: "max"}), i)
	}
}

func TestCommitmentFromString(t *testing.T) {
	for _, c := range []Commitment{CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized} {
		actual, err := CommitmentFromString(c.Commitment)
		require.NoError(t, err)
		assert.Equal(t, c, actual)
	}

	_, err := CommitmentFromString("recent")
	assert.Equal(t, ErrUnknownCommitment, err)
}

func TestClient_GetLatestBlockhash(t *testing.T) {
	var expected Blockhash
	for i := range expected {
		expected[i] = byte(i)
	}

	server, endpoint := newTestRPCServer(t, map[string]rpcHandler{
		"getLatestBlockhash": func(_ []json.RawMessage) (interface{}, map[string]interface{}) {
			return map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value": map[string]interface{}{
					"blockhash":            base58.Encode(expected[:]),
					"lastValidBlockHeight": 100,
				},
			}, nil
		},
	})

	c := New(endpoint)

	actual, err := c.GetLatestBlockhash()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	// Served from cache.
	actual, err = c.GetLatestBlockhash()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, 1, server.callCount("getLatestBlockhash"))
}

func TestClient_SubmitTransaction(t *testing.T) {
	keys := generateKeys(t, 2)
	txn := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1, 2, 3}, NewAccountMeta(public(keys[0]), true)),
	)
	require.NoError(t, txn.Sign(keys[0]))

	var encoded []byte
	_, endpoint := newTestRPCServer(t, map[string]rpcHandler{
		"sendTransaction": func(params []json.RawMessage) (interface{}, map[string]interface{}) {
			var raw string
			require.NoError(t, json.Unmarshal(params[0], &raw))
			encoded = []byte(raw)

			var config map[string]interface{}
			require.NoError(t, json.Unmarshal(params[1], &config))
			assert.Equal(t, false, config["skipPreflight"])
			assert.Equal(t, "confirmed", config["preflightCommitment"])

			sig := txn.Signature()
			return base58.Encode(sig), nil
		},
	})

	sig, err := New(endpoint).SubmitTransaction(txn, CommitmentConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, txn.Signature(), sig[:])
	assert.NotEmpty(t, encoded)
}

func TestClient_SubmitTransaction_SimulationFailure(t *testing.T) {
	keys := generateKeys(t, 2)
	txn := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1}, NewAccountMeta(public(keys[0]), true)),
	)
	require.NoError(t, txn.Sign(keys[0]))

	_, endpoint := newTestRPCServer(t, map[string]rpcHandler{
		"sendTransaction": func(_ []json.RawMessage) (interface{}, map[string]interface{}) {
			return nil, map[string]interface{}{
				"code":    -32002,
				"message": "Transaction simulation failed: Error processing Instruction 0: custom program error: 0x26",
				"data": map[string]interface{}{
					"err": map[string]interface{}{
						"InstructionError": []interface{}{0, map[string]interface{}{"Custom": 38}},
					},
				},
			}
		},
	})

	_, err := New(endpoint).SubmitTransaction(txn, CommitmentConfirmed)
	require.Error(t, err)

	txErr, ok := err.(*TransactionError)
	require.True(t, ok)
	require.NotNil(t, txErr.InstructionError())
	assert.Equal(t, 0, txErr.InstructionError().Index)
	assert.Equal(t, CustomError(38), *txErr.InstructionError().CustomError())
}

func TestClient_GetSignatureStatuses(t *testing.T) {
	var sigs [3]Signature
	for i := range sigs {
		sigs[i][0] = byte(i + 1)
	}

	_, endpoint := newTestRPCServer(t, map[string]rpcHandler{
		"getSignatureStatuses": func(params []json.RawMessage) (interface{}, map[string]interface{}) {
			var requested []string
			require.NoError(t, json.Unmarshal(params[0], &requested))
			require.Len(t, requested, 3)
			assert.Equal(t, base58.Encode(sigs[1][:]), requested[1])

			return map[string]interface{}{
				"context": map[string]interface{}{"slot": 82},
				"value": []interface{}{
					map[string]interface{}{
						"slot":               72,
						"confirmations":      10,
						"err":                nil,
						"confirmationStatus": "confirmed",
					},
					nil,
					map[string]interface{}{
						"slot":               48,
						"confirmations":      nil,
						"err":                map[string]interface{}{"InstructionError": []interface{}{1, "MissingAccount"}},
						"confirmationStatus": "finalized",
					},
				},
			}, nil
		},
	})

	statuses, err := New(endpoint).GetSignatureStatuses(sigs[:])
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	require.NotNil(t, statuses[0])
	assert.EqualValues(t, 72, statuses[0].Slot)
	assert.Nil(t, statuses[0].ErrorResult)
	assert.True(t, statuses[0].Confirmed())
	assert.False(t, statuses[0].Finalized())

	assert.Nil(t, statuses[1])

	require.NotNil(t, statuses[2])
	assert.True(t, statuses[2].Finalized())
	require.NotNil(t, statuses[2].ErrorResult)
	assert.Equal(t, InstructionErrorMissingAccount, statuses[2].ErrorResult.InstructionError().ErrorKey())
}

func TestClient_RetriesRateLimits(t *testing.T) {
	var expected Blockhash
	expected[0] = 1

	server, endpoint := newTestRPCServer(t, map[string]rpcHandler{})
	attempts := 0
	server.handlers["getLatestBlockhash"] = func(_ []json.RawMessage) (interface{}, map[string]interface{}) {
		attempts++
		if attempts == 1 {
			return nil, map[string]interface{}{"code": 429, "message": "too many requests"}
		}
		return map[string]interface{}{
			"value": map[string]interface{}{"blockhash": base58.Encode(expected[:])},
		}, nil
	}

	actual, err := New(endpoint).GetLatestBlockhash()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, 2, server.callCount("getLatestBlockhash"))
}
