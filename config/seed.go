package config

import (
	"toko-inventory/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin membuat akun admin pertama kalau belum ada user sama sekali.
func SeedAdmin(c SeedConfig) {
	var cnt int64
	if err := DB.Model(&models.User{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.AdminPassword), 10)
	if err != nil {
		Log.Warn("seed admin gagal hash password", zap.Error(err))
		return
	}
	admin := models.User{
		Username:     c.AdminUsername,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		Log.Warn("seed admin gagal", zap.Error(err))
		return
	}
	Log.Info("akun admin awal dibuat", zap.String("username", admin.Username))
}
