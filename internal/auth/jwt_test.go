package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewAuthService("test-secret")
	token, err := svc.IssueJWT("7", "navya")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Sub != "7" || claims.Username != "navya" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "videdu" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").IssueJWT("1", "u")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-b").Parse(token); err == nil {
		t.Fatal("token signed with another secret parsed")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := NewAuthService("test-secret")
	token, err := svc.IssueJWT("3", "kai")
	if err != nil {
		t.Fatal(err)
	}

	var gotSub, gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotUser = UsernameFromContext(r.Context())
	})
	handler := JWTMiddleware(svc)(next)

	// Valid bearer.
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if gotSub != "3" || gotUser != "kai" {
		t.Errorf("context = %q/%q", gotSub, gotUser)
	}

	// Missing header.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing header status = %d", rr.Code)
	}

	// Garbage token.
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bad token status = %d", rr.Code)
	}
}
