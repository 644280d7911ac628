package controllers

import (
	"net/http"
	"strconv"
	"time"

	"toko-inventory/config"
	"toko-inventory/models"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
)

type penjualanItemInput struct {
	BarangID  uint  `json:"barang_id" binding:"required"`
	Jumlah    int   `json:"jumlah" binding:"required,gt=0"`
	HargaJual int64 `json:"harga_jual" binding:"required,gt=0"`
}

type penjualanInput struct {
	Pembeli string               `json:"pembeli"`
	Tanggal string               `json:"tanggal"`
	Bayar   int64                `json:"bayar" binding:"required"`
	Items   []penjualanItemInput `json:"items" binding:"required,min=1"`
}

// CreatePenjualan menyimpan transaksi kasir: header + item + stok keluar
// dalam satu transaksi database.
func CreatePenjualan(c *gin.Context) {
	var in penjualanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	tanggal, err := parseTanggal(in.Tanggal, time.Now())
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	items := make([]service.PenjualanItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, service.PenjualanItemInput{
			BarangID:  it.BarangID,
			Jumlah:    it.Jumlah,
			HargaJual: it.HargaJual,
		})
	}

	hasil, err := service.NewLedger(config.DB).BuatPenjualan(c.Request.Context(), service.PenjualanInput{
		Pembeli: in.Pembeli,
		Tanggal: tanggal,
		Items:   items,
		Bayar:   in.Bayar,
		UserID:  uid,
	})
	if err != nil {
		ledgerError(c, err)
		return
	}

	utils.Created(c, "Penjualan berhasil disimpan", gin.H{
		"nomor_bon": hasil.NomorBon,
		"total":     hasil.Total,
		"bayar":     hasil.Bayar,
		"kembali":   hasil.Kembali,
		"penjualan": hasil,
	})
}

// GetRiwayatPenjualan menampilkan transaksi terakhir (default 10).
func GetRiwayatPenjualan(c *gin.Context) {
	limit := getInt(c, "limit", 10)
	if limit > 100 {
		limit = 100
	}

	var rows []models.Penjualan
	if err := config.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	utils.Success(c, "Riwayat penjualan", rows)
}

// GetPenjualanByID menampilkan detail bon beserta item dan barangnya.
func GetPenjualanByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Penjualan
	if err := config.DB.
		Preload("Items").
		Preload("Items.Barang").
		First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Penjualan tidak ditemukan", nil)
		return
	}

	// laba per baris memakai rumus yang sama dengan laporan
	type itemDetail struct {
		models.PenjualanItem
		Laba int64 `json:"laba"`
	}
	details := make([]itemDetail, 0, len(row.Items))
	for _, it := range row.Items {
		var laba int64
		if it.Barang != nil {
			laba = service.HitungLaba(it.Barang.HargaBeli, it.HargaJual, it.Jumlah)
		}
		details = append(details, itemDetail{PenjualanItem: it, Laba: laba})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  row,
		"items": details,
	})
}
