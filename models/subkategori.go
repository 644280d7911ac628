package models

import "gorm.io/gorm"

type Subkategori struct {
	gorm.Model
	KategoriID uint     `json:"kategori_id" gorm:"index;not null"`
	Kategori   Kategori `json:"kategori"`
	Nama       string   `json:"nama" gorm:"size:120;not null"`
}
