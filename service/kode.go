package service

import (
	"fmt"
	"strconv"
	"strings"

	"toko-inventory/models"

	"gorm.io/gorm"
)

// KodePrefix menurunkan prefix 3 huruf dari nama subkategori: konsonan
// lebih dulu sesuai urutan kemunculan, vokal menyusul kalau konsonan
// kurang, lalu dipad dengan X. "Kabel Listrik" -> "KBL".
func KodePrefix(nama string) string {
	upper := strings.ToUpper(nama)
	var konsonan, vokal []rune
	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			continue
		}
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			vokal = append(vokal, r)
		default:
			konsonan = append(konsonan, r)
		}
	}
	huruf := append(konsonan, vokal...)
	for len(huruf) < 3 {
		huruf = append(huruf, 'X')
	}
	return string(huruf[:3])
}

// GenerateKodeBarang mengusulkan kode berikutnya untuk sebuah
// subkategori: prefix + nomor urut tertinggi yang ada + 1. Deterministik
// terhadap snapshot data; keunikan final tetap dijaga unique index kolom
// kode.
func GenerateKodeBarang(db *gorm.DB, subkategoriNama string) (string, error) {
	prefix := KodePrefix(subkategoriNama)

	var kodes []string
	if err := db.Model(&models.Barang{}).
		Where("kode LIKE ?", prefix+"-%").
		Pluck("kode", &kodes).Error; err != nil {
		return "", err
	}

	max := 0
	for _, k := range kodes {
		num, err := strconv.Atoi(strings.TrimPrefix(k, prefix+"-"))
		if err != nil {
			continue
		}
		if num > max {
			max = num
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1), nil
}
