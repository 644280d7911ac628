package service

import (
	"toko-inventory/config"
	"toko-inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatatLog menulis log aktivitas secara best-effort: gagal menulis log
// tidak boleh menggagalkan operasi utamanya.
func CatatLog(db *gorm.DB, userID uint, aksi, detail string) {
	entry := models.LogAktivitas{
		UserID: userID,
		Aksi:   aksi,
		Detail: detail,
	}
	if err := db.Create(&entry).Error; err != nil {
		config.Log.Warn("gagal menulis log aktivitas",
			zap.String("aksi", aksi),
			zap.Error(err))
	}
}
