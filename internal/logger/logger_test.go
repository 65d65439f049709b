package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must not write anywhere
	l.Info().Msg("discarded")
	l.Error().Msg("discarded too")
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext must never return nil")
	}
}

func TestFromRequest_RoundTrip(t *testing.T) {
	parent := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(parent.WithContext(req.Context()))

	got := FromRequest(req)
	if got == nil {
		t.Fatal("FromRequest must never return nil")
	}
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == parent {
		t.Fatal("child logger must be a distinct instance")
	}
}
