package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/campusshare/internal/app/models/dto"
	"github.com/campusshare/campusshare/internal/middleware"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation failure", apperrors.NewValidationError("name cannot be empty"), 400, dto.ErrorCodeValidationFailed},
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeNotFound},
		{"resource not found", apperrors.ErrResourceNotFound, 404, dto.ErrorCodeNotFound},
		{"reward not found", apperrors.ErrRewardNotFound, 404, dto.ErrorCodeNotFound},
		{"duplicate entity", apperrors.NewAlreadyExistsError("a student with this email already exists"), 409, dto.ErrorCodeAlreadyExists},
		{"resource already transacted", apperrors.NewConflictError("resource 1 has already been transacted"), 409, dto.ErrorCodeConflict},
		{"insufficient points", apperrors.ErrInsufficientPoints, 409, dto.ErrorCodeInsufficientPoints},
		{"provider failure", apperrors.NewProviderError("inference timed out"), 502, dto.ErrorCodeProviderFailed},
		{"unexpected error", errors.New("connection reset"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			middleware.HandleAPIError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
