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

func GetAllSubkategori(c *gin.Context) {
	q := config.DB.Preload("Kategori").Order("nama ASC")
	if katID := c.Query("kategori_id"); katID != "" {
		q = q.Where("kategori_id = ?", katID)
	}
	var rows []models.Subkategori
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	utils.Success(c, "Daftar subkategori", rows)
}

func GetSubkategoriByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}
	var row models.Subkategori
	if err := config.DB.Preload("Kategori").First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Subkategori tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Detail subkategori", row)
}

func CreateSubkategori(c *gin.Context) {
	var input struct {
		KategoriID uint   `json:"kategori_id" binding:"required"`
		Nama       string `json:"nama" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Kategori{}).Where("id = ?", input.KategoriID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "Kategori tidak ditemukan", nil)
		return
	}

	row := models.Subkategori{KategoriID: input.KategoriID, Nama: input.Nama}
	if err := config.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan subkategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Tambah Subkategori", row.Nama)
	}
	utils.Created(c, "Subkategori berhasil ditambahkan", row)
}

func UpdateSubkategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Subkategori
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Subkategori tidak ditemukan", nil)
		return
	}

	var input struct {
		KategoriID uint   `json:"kategori_id" binding:"required"`
		Nama       string `json:"nama" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	row.KategoriID = input.KategoriID
	row.Nama = input.Nama
	if err := config.DB.Save(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengubah subkategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Edit Subkategori", row.Nama)
	}
	utils.Success(c, "Subkategori diperbarui", row)
}

func DeleteSubkategori(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Subkategori
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Subkategori tidak ditemukan", nil)
		} else {
			utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		}
		return
	}

	if err := config.DB.Delete(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus subkategori", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Hapus Subkategori", row.Nama)
	}
	utils.Success(c, "Subkategori dihapus", gin.H{"id": id})
}
