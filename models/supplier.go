package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Nama   string `json:"nama" gorm:"size:180;not null"`
	Kontak string `json:"kontak" gorm:"size:60"`
	Alamat string `json:"alamat" gorm:"size:255"`
}
