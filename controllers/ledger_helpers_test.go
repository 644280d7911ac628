package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"toko-inventory/service"

	"github.com/gin-gonic/gin"
)

func TestLedgerErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		nama       string
		err        error
		wantStatus int
	}{
		{"validasi", &service.ValidationError{Msg: "jumlah harus lebih dari 0"}, http.StatusBadRequest},
		{"stok kurang", &service.InsufficientStockError{Nama: "Semen", Tersedia: 2, Diminta: 5}, http.StatusConflict},
		{"bayar kurang", &service.PaymentInsufficientError{Total: 1000, Bayar: 500}, http.StatusBadRequest},
		{"tidak ditemukan", service.ErrNotFound, http.StatusNotFound},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"lainnya", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		ledgerError(c, tc.err)
		if w.Code != tc.wantStatus {
			t.Errorf("%s: status = %d, mau %d", tc.nama, w.Code, tc.wantStatus)
		}
	}

	// timeout harus memberi pesan bahwa operasi layak dicoba ulang
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ledgerError(c, context.DeadlineExceeded)
	if !strings.Contains(w.Body.String(), "coba lagi") {
		t.Errorf("respons timeout tidak menyarankan coba lagi: %s", w.Body.String())
	}
}
