package controllers

import (
	"net/http"
	"strconv"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func GetAllSupplier(c *gin.Context) {
	var rows []models.Supplier
	if err := config.DB.Order("nama ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	utils.Success(c, "Daftar supplier", rows)
}

func GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}
	var row models.Supplier
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Detail supplier", row)
}

func CreateSupplier(c *gin.Context) {
	var input struct {
		Nama   string `json:"nama" binding:"required"`
		Kontak string `json:"kontak"`
		Alamat string `json:"alamat"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	row := models.Supplier{Nama: input.Nama, Kontak: input.Kontak, Alamat: input.Alamat}
	if err := config.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan supplier", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Tambah Supplier", row.Nama)
	}
	utils.Created(c, "Supplier berhasil ditambahkan", row)
}

func UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Supplier
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
		return
	}

	var input struct {
		Nama   string `json:"nama" binding:"required"`
		Kontak string `json:"kontak"`
		Alamat string `json:"alamat"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	row.Nama = input.Nama
	row.Kontak = input.Kontak
	row.Alamat = input.Alamat
	if err := config.DB.Save(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengubah supplier", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Edit Supplier", row.Nama)
	}
	utils.Success(c, "Supplier diperbarui", row)
}

func DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Supplier
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier tidak ditemukan", nil)
		return
	}

	if err := config.DB.Delete(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus supplier", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Hapus Supplier", row.Nama)
	}
	utils.Success(c, "Supplier dihapus", gin.H{"id": id})
}
