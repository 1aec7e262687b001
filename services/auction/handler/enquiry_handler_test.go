package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test SubmitEnquiryHandler
func TestSubmitEnquiryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockEnquiryServiceInterface(ctrl)
	handler := NewEnquiryHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/enquiry", handler.SubmitEnquiryHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_enquiry",
			requestBody: helpers.EnquiryRequest{
				Name:    "Ravi Patel",
				Email:   "ravi@example.com",
				Message: "How do I register a team?",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Submit("Ravi Patel", "ravi@example.com", "How do I register a team?").
					Return(model.Enquiry{ID: 7, Name: "Ravi Patel", Email: "ravi@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "enquiry submitted successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 7.0, data["enquiry_id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_email",
			requestBody: helpers.EnquiryRequest{
				Name:    "Ravi Patel",
				Message: "hello",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "malformed_email",
			requestBody: helpers.EnquiryRequest{
				Name:    "Ravi Patel",
				Email:   "not-an-email",
				Message: "hello",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.EnquiryRequest{
				Name:    "Ravi Patel",
				Email:   "ravi@example.com",
				Message: "hello",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Submit("Ravi Patel", "ravi@example.com", "hello").
					Return(model.Enquiry{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/enquiry", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
