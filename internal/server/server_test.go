package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	mock_server "github.com/GauravSharma9258/DBMS-Project/internal/server/mocks"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

func newTestServer(ctrl *gomock.Controller) (*Server, *mock_server.MockStorage, *mock_server.MockUserDirectory) {
	mockStorage := mock_server.NewMockStorage(ctrl)
	mockUsers := mock_server.NewMockUserDirectory(ctrl)
	return New(mockStorage, mockUsers, zap.NewNop()), mockStorage, mockUsers
}

func requestAs(req *http.Request, user *repository.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), userContextKey, user))
}

func TestHandleCreateDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)
	donor := &repository.User{ID: "donor-1", Role: repository.RoleDonor}

	t.Run("successful creation triggers assignment", func(t *testing.T) {
		created := &storage.Donation{ID: "don-1", DonorID: "donor-1", Status: "pending"}
		assignDone := make(chan struct{})

		mockStorage.EXPECT().
			CreateDonation(gomock.Any(), donor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *repository.User, input storage.NewDonation) (*storage.Donation, error) {
				assert.Equal(t, "cooked rice", input.FoodType)
				assert.Equal(t, "5 kg", input.Quantity)
				return created, nil
			})
		mockStorage.EXPECT().
			AutoAssignCandidates(gomock.Any(), "don-1").
			DoAndReturn(func(context.Context, string) error {
				close(assignDone)
				return nil
			})

		body, err := json.Marshal(map[string]interface{}{
			"food_type":    "cooked rice",
			"quantity":     "5 kg",
			"cooking_time": "2025-06-01T10:00:00Z",
			"address":      "12 MG Road",
			"phone":        "9876543210",
			"expiry_time":  "2025-06-01T20:00:00Z",
		})
		require.NoError(t, err)

		req := requestAs(httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body)), donor)
		rr := httptest.NewRecorder()

		server.handleCreateDonation(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"don-1"`)

		select {
		case <-assignDone:
		case <-time.After(2 * time.Second):
			t.Fatal("assignment was not triggered")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := requestAs(httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader([]byte("{"))), donor)
		rr := httptest.NewRecorder()

		server.handleCreateDonation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())
	})

	t.Run("bad timestamp", func(t *testing.T) {
		body, err := json.Marshal(map[string]interface{}{
			"food_type":    "cooked rice",
			"quantity":     "5 kg",
			"cooking_time": "yesterday",
			"expiry_time":  "2025-06-01T20:00:00Z",
		})
		require.NoError(t, err)

		req := requestAs(httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body)), donor)
		rr := httptest.NewRecorder()

		server.handleCreateDonation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid cooking_time, use RFC3339"}`, rr.Body.String())
	})

	t.Run("forbidden role maps to 403", func(t *testing.T) {
		mockStorage.EXPECT().
			CreateDonation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrForbidden)

		body, err := json.Marshal(map[string]interface{}{
			"food_type":    "cooked rice",
			"quantity":     "5 kg",
			"cooking_time": "2025-06-01T10:00:00Z",
			"address":      "12 MG Road",
			"phone":        "9876543210",
			"expiry_time":  "2025-06-01T20:00:00Z",
		})
		require.NoError(t, err)

		req := requestAs(httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body)), donor)
		rr := httptest.NewRecorder()

		server.handleCreateDonation(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandleGetDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)

	tests := []struct {
		name           string
		donationID     string
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "donation found",
			donationID: "don-1",
			setupMocks: func() {
				mockStorage.EXPECT().
					GetDonation(gomock.Any(), "don-1").
					Return(&storage.Donation{ID: "don-1", Status: "pending"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"don-1"`,
		},
		{
			name:       "donation not found",
			donationID: "missing",
			setupMocks: func() {
				mockStorage.EXPECT().
					GetDonation(gomock.Any(), "missing").
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error"`,
		},
		{
			name:       "transient failure",
			donationID: "don-1",
			setupMocks: func() {
				mockStorage.EXPECT().
					GetDonation(gomock.Any(), "don-1").
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodGet, "/donations/"+tc.donationID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.donationID})
			rr := httptest.NewRecorder()

			server.handleGetDonation(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandleRespondToDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)
	agent := &repository.User{ID: "agent-1", Role: repository.RoleAgent}

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "accept succeeds",
			body: `{"action":"accept"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					RespondToDonation(gomock.Any(), "don-1", agent, storage.ActionAccept).
					Return(&storage.Donation{ID: "don-1", Status: "assigned", AgentID: "agent-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "decline succeeds",
			body: `{"action":"decline"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					RespondToDonation(gomock.Any(), "don-1", agent, storage.ActionDecline).
					Return(&storage.Donation{ID: "don-1", Status: "pending"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "lost race maps to 409",
			body: `{"action":"accept"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					RespondToDonation(gomock.Any(), "don-1", agent, storage.ActionAccept).
					Return(nil, storage.ErrStateConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid action maps to 400",
			body: `{"action":"maybe"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					RespondToDonation(gomock.Any(), "don-1", agent, storage.ResponseAction("maybe")).
					Return(nil, storage.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/donations/don-1/respond", bytes.NewReader([]byte(tc.body)))
			req = mux.SetURLVars(req, map[string]string{"id": "don-1"})
			req = requestAs(req, agent)
			rr := httptest.NewRecorder()

			server.handleRespondToDonation(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleLifecycleTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)
	donor := &repository.User{ID: "donor-1", Role: repository.RoleDonor}

	t.Run("pickup confirmation", func(t *testing.T) {
		mockStorage.EXPECT().
			MarkPickedUp(gomock.Any(), "don-1", donor).
			Return(&storage.Donation{ID: "don-1", Status: "picked_up"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/donations/don-1/pickup", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "don-1"})
		req = requestAs(req, donor)
		rr := httptest.NewRecorder()

		server.handleMarkPickedUp(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"picked_up"`)
	})

	t.Run("pickup on wrong state maps to 409", func(t *testing.T) {
		mockStorage.EXPECT().
			MarkPickedUp(gomock.Any(), "don-1", donor).
			Return(nil, storage.ErrStateConflict)

		req := httptest.NewRequest(http.MethodPost, "/donations/don-1/pickup", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "don-1"})
		req = requestAs(req, donor)
		rr := httptest.NewRecorder()

		server.handleMarkPickedUp(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("collection confirmation", func(t *testing.T) {
		mockStorage.EXPECT().
			MarkCollected(gomock.Any(), "don-1", donor).
			Return(&storage.Donation{ID: "don-1", Status: "collected"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/donations/don-1/collect", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "don-1"})
		req = requestAs(req, donor)
		rr := httptest.NewRecorder()

		server.handleMarkCollected(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("admin rejection", func(t *testing.T) {
		admin := &repository.User{ID: "admin-1", Role: repository.RoleAdmin}
		mockStorage.EXPECT().
			RejectDonation(gomock.Any(), "don-1", admin).
			Return(&storage.Donation{ID: "don-1", Status: "rejected"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/donations/don-1/reject", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "don-1"})
		req = requestAs(req, admin)
		rr := httptest.NewRecorder()

		server.handleRejectDonation(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleDonorDonations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)

	t.Run("without filter", func(t *testing.T) {
		mockStorage.EXPECT().
			GetDonorDonations(gomock.Any(), "donor-1", gomock.Nil()).
			Return([]*storage.Donation{{ID: "don-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/donors/donor-1/donations", nil)
		req = mux.SetURLVars(req, map[string]string{"donorID": "donor-1"})
		rr := httptest.NewRecorder()

		server.handleDonorDonations(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("with status filter", func(t *testing.T) {
		mockStorage.EXPECT().
			GetDonorDonations(gomock.Any(), "donor-1", []repository.DonationStatus{
				repository.DonationPending,
				repository.DonationAssigned,
			}).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/donors/donor-1/donations?status=pending,assigned", nil)
		req = mux.SetURLVars(req, map[string]string{"donorID": "donor-1"})
		rr := httptest.NewRecorder()

		server.handleDonorDonations(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/donors/donor-1/donations?status=bogus", nil)
		req = mux.SetURLVars(req, map[string]string{"donorID": "donor-1"})
		rr := httptest.NewRecorder()

		server.handleDonorDonations(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid value for 'status' parameter"}`, rr.Body.String())
	})
}

func TestHandleAgentEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockStorage, _ := newTestServer(ctrl)
	agent := &repository.User{ID: "agent-1", Role: repository.RoleAgent}

	t.Run("open offers", func(t *testing.T) {
		mockStorage.EXPECT().
			GetOpenOffers(gomock.Any(), "agent-1").
			Return([]*storage.Donation{{ID: "don-1", Status: "pending"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/agents/agent-1/offers", nil)
		req = mux.SetURLVars(req, map[string]string{"agentID": "agent-1"})
		rr := httptest.NewRecorder()

		server.handleAgentOffers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("collections listing", func(t *testing.T) {
		mockStorage.EXPECT().
			GetAgentCollections(gomock.Any(), "agent-1").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/agents/agent-1/collections", nil)
		req = mux.SetURLVars(req, map[string]string{"agentID": "agent-1"})
		rr := httptest.NewRecorder()

		server.handleAgentCollections(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("purge collections", func(t *testing.T) {
		mockStorage.EXPECT().
			PurgeAgentCollections(gomock.Any(), agent).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/agents/agent-1/collections", nil)
		req = mux.SetURLVars(req, map[string]string{"agentID": "agent-1"})
		req = requestAs(req, agent)
		rr := httptest.NewRecorder()

		server.handlePurgeAgentCollections(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Collected donations removed"}`, rr.Body.String())
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _, mockUsers := newTestServer(ctrl)

	protected := server.basicAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := actingUser(r)
		require.NotNil(t, user)
		assert.Equal(t, "donor-1", user.ID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid credentials pass the user through", func(t *testing.T) {
		mockUsers.EXPECT().
			ValidateUser(gomock.Any(), "donor@example.com", "secret").
			Return(true, nil)
		mockUsers.EXPECT().
			GetByEmail(gomock.Any(), "donor@example.com").
			Return(&repository.User{ID: "donor-1", Email: "donor@example.com", Role: repository.RoleDonor}, nil)

		req := httptest.NewRequest(http.MethodGet, "/donations/don-1", nil)
		req.SetBasicAuth("donor@example.com", "secret")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/donations/don-1", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers.EXPECT().
			ValidateUser(gomock.Any(), "donor@example.com", "wrong").
			Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/donations/don-1", nil)
		req.SetBasicAuth("donor@example.com", "wrong")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
