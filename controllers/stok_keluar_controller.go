package controllers

import (
	"net/http"
	"time"

	"toko-inventory/config"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func GetStokKeluar(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	f := service.RekapFilter{Start: start, End: end, Query: c.Query("q")}
	rows, sum, err := service.NewLaporan(config.DB).RekapStokKeluar(c.Request.Context(), f)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    rows,
		"summary": sum,
	})
}

func CreateStokKeluar(c *gin.Context) {
	var input struct {
		BarangID   uint   `json:"barang_id" binding:"required"`
		Jumlah     int    `json:"jumlah" binding:"required"`
		Tanggal    string `json:"tanggal"`
		Keterangan string `json:"keterangan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Barang dan jumlah wajib diisi", err)
		return
	}
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	tanggal, err := parseTanggal(input.Tanggal, time.Now())
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	entry, err := service.NewLedger(config.DB).StokKeluar(c.Request.Context(), service.StokKeluarInput{
		BarangID:   input.BarangID,
		Jumlah:     input.Jumlah,
		Tanggal:    tanggal,
		Keterangan: input.Keterangan,
		UserID:     uid,
	})
	if err != nil {
		ledgerError(c, err)
		return
	}
	utils.Created(c, "Stok keluar berhasil dicatat", entry)
}

func ResetStokKeluar(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	n, err := service.NewLedger(config.DB).HapusStokKeluarPeriode(c.Request.Context(), start, end, uid)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mereset data", err)
		return
	}
	utils.Success(c, "Data stok keluar berhasil direset", gin.H{"deleted": n})
}
