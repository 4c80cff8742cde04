package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/portfolio/holdings/NVDA", nil)
	assert.Equal(t, "NVDA", PathParam(r, "/api/portfolio/holdings/", ""))

	r = httptest.NewRequest("GET", "/api/portfolio/holdings/NVDA/extra", nil)
	assert.Equal(t, "NVDA", PathParam(r, "/api/portfolio/holdings/", ""))

	r = httptest.NewRequest("GET", "/other/path", nil)
	assert.Equal(t, "", PathParam(r, "/api/portfolio/holdings/", ""))
}

func TestSplitListParam(t *testing.T) {
	assert.Nil(t, splitListParam(""))
	assert.Nil(t, splitListParam("   "))
	assert.Equal(t, []string{"AAPL"}, splitListParam("AAPL"))
	assert.Equal(t, []string{"AAPL", "TSLA"}, splitListParam(" AAPL , TSLA ,, "))
}
