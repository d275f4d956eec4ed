package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/mock"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
)

func newRouteTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	return NewHandler(&service.Services{
		AuthService:      mock.NewMockAuthService(ctrl),
		KeyIssueService:  mock.NewMockKeyIssueService(ctrl),
		DirectoryService: mock.NewMockDirectoryService(ctrl),
		PreviewService:   mock.NewMockPreviewService(ctrl),
	}, logger.Nop())
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/crypto/generate-keypair"},
	{http.MethodPost, "/api/crypto/public-key"},
	{http.MethodGet, "/api/crypto/public-key/alice"},
	{http.MethodPost, "/api/messages/decrypt-preview"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRouteTestHandler(t).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// All routes sit behind the auth middleware: a request without
			// a token returns 401, which still proves the route exists.
			assert.Equal(t, http.StatusUnauthorized, rec.Code,
				"route not registered: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRouteTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newRouteTestHandler(t).Init()

	// DELETE /api/crypto/generate-keypair is not registered — only POST is.
	req := httptest.NewRequest(http.MethodDelete, "/api/crypto/generate-keypair", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
