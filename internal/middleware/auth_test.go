package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/stretchr/testify/assert"
)

type staticAuthenticator map[string]entities.Identity

func (s staticAuthenticator) Authenticate(token string) (entities.Identity, error) {
	id, ok := s[token]
	if !ok {
		return entities.Identity{}, errors.New("bad token")
	}
	return id, nil
}

func TestAuth(t *testing.T) {
	authn := staticAuthenticator{
		"good": {SubjectID: "u1", Role: entities.RoleUser},
	}

	testCases := []struct {
		name        string
		header      string
		cookie      string
		wantStatus  int
		wantSubject string
	}{
		{name: "bearer header", header: "Bearer good", wantStatus: http.StatusOK, wantSubject: "u1"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantSubject: "u1"},
		{name: "cookie fallback", cookie: "good", wantStatus: http.StatusOK, wantSubject: "u1"},
		{name: "anonymous", wantStatus: http.StatusOK},
		{name: "non bearer scheme is anonymous", header: "Basic Zm9v", wantStatus: http.StatusOK},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "header wins over cookie", header: "Bearer bad", cookie: "good", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject = IdentityFrom(r.Context()).SubjectID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()

			Auth(authn, "token")(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantSubject, subject)
		})
	}
}
