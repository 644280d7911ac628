package controllers

import (
	"net/http"
	"time"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register hanya bisa dipanggil admin (lihat routes).
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		FullName string `json:"full_name"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"` // admin atau kasir
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	role := models.Role(input.Role)
	if role == "" {
		role = models.RoleKasir
	}
	if role != models.RoleAdmin && role != models.RoleKasir {
		utils.Error(c, http.StatusBadRequest, "Role tidak dikenal", nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Username sudah terdaftar", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memproses password", err)
		return
	}
	user := models.User{
		Username:     input.Username,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat user", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Tambah User", user.Username+" ("+string(user.Role)+")")
	}
	utils.Created(c, "Registrasi berhasil", gin.H{"username": user.Username, "role": user.Role})
}

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}
	if !user.IsActive {
		utils.Error(c, http.StatusUnauthorized, "Akun tidak aktif", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.Error(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat token", err)
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login_at", &now)

	utils.Success(c, "Login sukses", gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Profil user", user)
}
