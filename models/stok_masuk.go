package models

import (
	"time"

	"gorm.io/gorm"
)

// StokMasuk menambah stok barang. Baris bersifat immutable setelah dibuat.
type StokMasuk struct {
	gorm.Model
	BarangID   uint      `json:"barang_id" gorm:"index;not null"`
	Barang     *Barang   `json:"barang,omitempty"`
	SupplierID *uint     `json:"supplier_id" gorm:"index"`
	Supplier   *Supplier `json:"supplier,omitempty"`
	Jumlah     int       `json:"jumlah" gorm:"not null"`
	Tanggal    time.Time `json:"tanggal" gorm:"index;not null"`
	Keterangan string    `json:"keterangan" gorm:"size:255"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
}
