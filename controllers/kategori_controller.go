package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllKategori(c *gin.Context) {
	var rows []models.Kategori
	if err := config.DB.Order("nama ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	utils.Success(c, "Daftar kategori", rows)
}

func GetKategoriByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}
	var row models.Kategori
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Kategori tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Detail kategori", row)
}

func CreateKategori(c *gin.Context) {
	var input struct {
		Nama      string `json:"nama" binding:"required"`
		Deskripsi string `json:"deskripsi"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	row := models.Kategori{Nama: input.Nama, Deskripsi: input.Deskripsi}
	if err := config.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan kategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Tambah Kategori", row.Nama)
	}
	utils.Created(c, "Kategori berhasil ditambahkan", row)
}

func UpdateKategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Kategori
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Kategori tidak ditemukan", nil)
		return
	}

	var input struct {
		Nama      string `json:"nama" binding:"required"`
		Deskripsi string `json:"deskripsi"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	row.Nama = input.Nama
	row.Deskripsi = input.Deskripsi
	if err := config.DB.Save(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengubah kategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Edit Kategori", row.Nama)
	}
	utils.Success(c, "Kategori diperbarui", row)
}

func DeleteKategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Kategori
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Kategori tidak ditemukan", nil)
		} else {
			utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		}
		return
	}

	if err := config.DB.Delete(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus kategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Hapus Kategori", row.Nama)
	}
	utils.Success(c, "Kategori dihapus", gin.H{"id": id})
}
