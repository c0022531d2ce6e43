package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movequote/internal/adapter/http/handlers/mocks"
	"movequote/internal/adapter/http/middleware"
	"movequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteTransitionUseCase, *mocks.MockIQuoteQueryUseCase, *mocks.MockIQuoteRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	transition := mocks.NewMockIQuoteTransitionUseCase(ctrl)
	query := mocks.NewMockIQuoteQueryUseCase(ctrl)
	requests := mocks.NewMockIQuoteRequestUseCase(ctrl)
	r := NewRouter(Dependencies{Transition: transition, Query: query, Requests: requests, JWTSecret: []byte("secret")})
	return r, transition, query, requests
}

func accessCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return &http.Cookie{Name: middleware.AccessTokenCookie, Value: token}
}

func TestRouter_Ping(t *testing.T) {
	r, _, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_ProtectedRoutesNeedUser(t *testing.T) {
	r, _, _, _ := newTestRouter(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/v1/quotes"},
		{http.MethodGet, "/v1/quotes/mover"},
		{http.MethodPost, "/v1/quote-requests"},
		{http.MethodGet, "/v1/quote-requests"},
		{http.MethodGet, "/v1/quote-requests/latest"},
		{http.MethodPost, "/v1/quote-requests/qr-1/targets"},
		{http.MethodPost, "/v1/quote-requests/qr-1/reject"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestRouter_DispatchesWithIdentity(t *testing.T) {
	r, _, query, _ := newTestRouter(t)
	page, _ := entities.NewPageRequest(1, 4, 50)
	query.EXPECT().ListQuotesForMover(gomock.Any(), 1, 4, "mover-9").Return(entities.NewPagedResult[entities.QuoteView](nil, 0, page), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/mover", nil)
	req.AddCookie(accessCookie(t, "mover-9"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouter_QuoteDetailIsPublic(t *testing.T) {
	r, _, query, _ := newTestRouter(t)
	query.EXPECT().GetQuoteForCustomer(gomock.Any(), "q-1").Return(entities.QuoteView{Quote: entities.MoverQuote{ID: "q-1"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/customer", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
