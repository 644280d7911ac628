package service

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("data tidak ditemukan")

// ValidationError dikembalikan sebelum ada akses database sama sekali.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// InsufficientStockError menyebutkan barang yang stoknya kurang beserta
// sisa stok saat pengecekan.
type InsufficientStockError struct {
	BarangID uint
	Nama     string
	Tersedia int
	Diminta  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak cukup (tersedia: %d, diminta: %d)", e.Nama, e.Tersedia, e.Diminta)
}

type PaymentInsufficientError struct {
	Total int64
	Bayar int64
}

func (e *PaymentInsufficientError) Error() string {
	return fmt.Sprintf("jumlah bayar kurang dari total (total: %d, bayar: %d)", e.Total, e.Bayar)
}
