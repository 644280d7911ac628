package models

import (
	"time"

	"gorm.io/gorm"
)

// StokKeluar mengurangi stok barang, baik dari pengeluaran manual maupun
// dari penjualan (keterangan memuat nomor bon).
type StokKeluar struct {
	gorm.Model
	BarangID   uint      `json:"barang_id" gorm:"index;not null"`
	Barang     *Barang   `json:"barang,omitempty"`
	Jumlah     int       `json:"jumlah" gorm:"not null"`
	Tanggal    time.Time `json:"tanggal" gorm:"index;not null"`
	Keterangan string    `json:"keterangan" gorm:"size:255"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
}
