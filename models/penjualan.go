package models

import (
	"time"

	"gorm.io/gorm"
)

// Penjualan adalah header transaksi kasir. Item dan stok keluar dibuat
// bersama-sama dalam satu transaksi database.
type Penjualan struct {
	gorm.Model
	NomorBon string          `json:"nomor_bon" gorm:"uniqueIndex;size:40;not null"`
	Tanggal  time.Time       `json:"tanggal" gorm:"index;not null"`
	Pembeli  string          `json:"pembeli" gorm:"size:180"`
	Total    int64           `json:"total" gorm:"not null"`
	Bayar    int64           `json:"bayar" gorm:"not null"`
	Kembali  int64           `json:"kembali" gorm:"not null"`
	UserID   uint            `json:"user_id" gorm:"index;not null"`
	Items    []PenjualanItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type PenjualanItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PenjualanID uint    `gorm:"index;not null" json:"penjualan_id"`
	BarangID    uint    `gorm:"not null" json:"barang_id"`
	Barang      *Barang `json:"barang,omitempty"`
	Jumlah      int     `gorm:"not null" json:"jumlah"`
	HargaJual   int64   `gorm:"not null" json:"harga_jual"` // harga saat transaksi
	Subtotal    int64   `gorm:"not null" json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`
}
