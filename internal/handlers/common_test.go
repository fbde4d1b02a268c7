package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetWorkspaceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	workspaceID := uuid.New()

	tests := []struct {
		name      string
		ctxValue  string
		header    string
		want      uuid.UUID
		wantError bool
	}{
		{name: "from auth context", ctxValue: workspaceID.String(), want: workspaceID},
		{name: "matching header", ctxValue: workspaceID.String(), header: workspaceID.String(), want: workspaceID},
		{name: "mismatching header", ctxValue: workspaceID.String(), header: uuid.NewString(), wantError: true},
		{name: "header alone is not trusted", header: workspaceID.String(), wantError: true},
		{name: "malformed context value", ctxValue: "nope", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.ctxValue != "" {
				c.Set(constants.WorkspaceIDKey, tt.ctxValue)
			}
			if tt.header != "" {
				c.Request.Header.Set(constants.WorkspaceIDHeader, tt.header)
			}

			got, err := GetWorkspaceID(c)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
