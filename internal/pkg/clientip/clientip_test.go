package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_ForwardedForFirstHop(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1, 10.0.0.2")
	assert.Equal(t, "203.0.113.9", FromRequest(r))
}

func TestFromRequest_FallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "198.51.100.4:52011"
	assert.Equal(t, "198.51.100.4", FromRequest(r))
}

func TestFromRequest_RemoteAddrWithoutPort(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "198.51.100.4"
	assert.Equal(t, "198.51.100.4", FromRequest(r))
}
