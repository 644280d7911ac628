package controllers

import (
	"net/http"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	stats, err := service.NewLaporan(config.DB).Dashboard(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data dashboard", err)
		return
	}

	var logs []models.LogAktivitas
	if err := config.DB.Order("created_at DESC").Limit(10).Find(&logs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil log", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       stats,
		"recent_logs": logs,
	})
}
