package controllers

import (
	"net/http"
	"strconv"
	"time"

	"toko-inventory/config"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

func GetStokMasuk(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	f := service.RekapFilter{Start: start, End: end, Query: c.Query("q")}
	if s := c.Query("supplier_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "supplier_id tidak valid", nil)
			return
		}
		sid := uint(id)
		f.SupplierID = &sid
	}

	rows, sum, err := service.NewLaporan(config.DB).RekapStokMasuk(c.Request.Context(), f)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    rows,
		"summary": sum,
	})
}

func CreateStokMasuk(c *gin.Context) {
	var input struct {
		BarangID   uint   `json:"barang_id" binding:"required"`
		SupplierID *uint  `json:"supplier_id"`
		Jumlah     int    `json:"jumlah" binding:"required"`
		Tanggal    string `json:"tanggal"` // YYYY-MM-DD, default hari ini
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

	entry, err := service.NewLedger(config.DB).StokMasuk(c.Request.Context(), service.StokMasukInput{
		BarangID:   input.BarangID,
		SupplierID: input.SupplierID,
		Jumlah:     input.Jumlah,
		Tanggal:    tanggal,
		Keterangan: input.Keterangan,
		UserID:     uid,
	})
	if err != nil {
		ledgerError(c, err)
		return
	}
	utils.Created(c, "Stok masuk berhasil dicatat", entry)
}

// ResetStokMasuk menghapus data stok masuk dalam satu rentang tanggal.
func ResetStokMasuk(c *gin.Context) {
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

	n, err := service.NewLedger(config.DB).HapusStokMasukPeriode(c.Request.Context(), start, end, uid)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mereset data", err)
		return
	}
	utils.Success(c, "Data stok masuk berhasil direset", gin.H{"deleted": n})
}
