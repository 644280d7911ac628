package controllers

import (
	"net/http"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func GetLogAktivitas(c *gin.Context) {
	page := getInt(c, "page", 1)
	limit := getInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}

	q := config.DB.Model(&models.LogAktivitas{})
	if aksi := c.Query("aksi"); aksi != "" {
		q = q.Where("aksi = ?", aksi)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	var rows []models.LogAktivitas
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}
