package models

import "gorm.io/gorm"

type Barang struct {
	gorm.Model
	Kode          string       `json:"kode" gorm:"uniqueIndex;size:40;not null"`
	Nama          string       `json:"nama" gorm:"size:200;not null"`
	KategoriID    *uint        `json:"kategori_id" gorm:"index"`
	Kategori      *Kategori    `json:"kategori,omitempty"`
	SubkategoriID *uint        `json:"subkategori_id" gorm:"index"`
	Subkategori   *Subkategori `json:"subkategori,omitempty"`
	Satuan        string       `json:"satuan" gorm:"size:40;default:pcs"`
	HargaBeli     int64        `json:"harga_beli" gorm:"not null;default:0"`
	HargaJual     int64        `json:"harga_jual" gorm:"not null;default:0"`
	Stok          int          `json:"stok" gorm:"not null;default:0"`
	StokMinimum   int          `json:"stok_minimum" gorm:"not null;default:0"`
}
