package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

// ledgerError memetakan error service ledger ke status HTTP dengan pesan
// yang menyebut precondition mana yang dilanggar.
func ledgerError(c *gin.Context, err error) {
	var (
		valErr   *service.ValidationError
		stokErr  *service.InsufficientStockError
		bayarErr *service.PaymentInsufficientError
	)
	switch {
	case errors.As(err, &valErr):
		utils.Error(c, http.StatusBadRequest, valErr.Msg, nil)
	case errors.As(err, &stokErr):
		utils.Error(c, http.StatusConflict, stokErr.Error(), nil)
	case errors.As(err, &bayarErr):
		utils.Error(c, http.StatusBadRequest, bayarErr.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		utils.Error(c, http.StatusNotFound, "Data tidak ditemukan", nil)
	case errors.Is(err, context.DeadlineExceeded):
		utils.Error(c, http.StatusGatewayTimeout, "Operasi melebihi batas waktu, silakan coba lagi", nil)
	default:
		utils.Error(c, http.StatusInternalServerError, "Operasi gagal", err)
	}
}

func parseTanggal(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// rentangPeriode membaca query periode / date_start / date_end.
// date_start+date_end menang kalau diisi.
func rentangPeriode(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	start, end := service.PeriodeRange(c.DefaultQuery("periode", "bulanan"), now)

	if s := c.Query("date_start"); s != "" {
		t, err := parseTanggal(s, start)
		if err != nil {
			return start, end, err
		}
		start = t
	}
	if s := c.Query("date_end"); s != "" {
		t, err := parseTanggal(s, end)
		if err != nil {
			return start, end, err
		}
		end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}
	return start, end, nil
}
