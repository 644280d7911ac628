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
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func getInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func GetAllBarang(c *gin.Context) {
	q := config.DB.Model(&models.Barang{}).
		Preload("Kategori").
		Preload("Subkategori")

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("nama ILIKE ? OR kode ILIKE ?", like, like)
	}
	if katID := c.Query("kategori_id"); katID != "" {
		q = q.Where("kategori_id = ?", katID)
	}
	if subID := c.Query("subkategori_id"); subID != "" {
		q = q.Where("subkategori_id = ?", subID)
	}
	if c.Query("low_stock") == "true" {
		q = q.Where("stok <= stok_minimum")
	}

	switch c.Query("sort") {
	case "nama":
		q = q.Order("nama ASC")
	case "-nama":
		q = q.Order("nama DESC")
	case "stok":
		q = q.Order("stok ASC")
	case "-stok":
		q = q.Order("stok DESC")
	default:
		q = q.Order("kode ASC")
	}

	page := getInt(c, "page", 1)
	size := getInt(c, "page_size", 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	var rows []models.Barang
	if err := q.Offset((page - 1) * size).Limit(size).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"pagination": gin.H{
			"page":      page,
			"page_size": size,
			"total":     total,
		},
	})
}

func GetBarangByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}
	var row models.Barang
	if err := config.DB.Preload("Kategori").Preload("Subkategori").First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Detail barang", row)
}

// GenerateKodeBarang mengusulkan kode berikutnya untuk subkategori
// tertentu; dipakai form tambah barang.
func GenerateKodeBarang(c *gin.Context) {
	nama := c.Query("subkategori")
	if nama == "" {
		utils.Error(c, http.StatusBadRequest, "Parameter subkategori wajib diisi", nil)
		return
	}
	kode, err := service.GenerateKodeBarang(config.DB, nama)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat kode", err)
		return
	}
	utils.Success(c, "Kode barang", gin.H{"kode": kode})
}

func CreateBarang(c *gin.Context) {
	var input struct {
		Kode          string `json:"kode"`
		Nama          string `json:"nama" binding:"required"`
		KategoriID    *uint  `json:"kategori_id"`
		SubkategoriID *uint  `json:"subkategori_id"`
		Satuan        string `json:"satuan"`
		HargaBeli     int64  `json:"harga_beli"`
		HargaJual     int64  `json:"harga_jual"`
		StokMinimum   int    `json:"stok_minimum"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}
	if input.HargaBeli < 0 || input.HargaJual < 0 || input.StokMinimum < 0 {
		utils.Error(c, http.StatusBadRequest, "Harga dan stok minimum tidak boleh negatif", nil)
		return
	}

	// kode dibuat otomatis dari subkategori kalau tidak diisi manual
	if input.Kode == "" {
		if input.SubkategoriID == nil {
			utils.Error(c, http.StatusBadRequest, "Kode atau subkategori wajib diisi", nil)
			return
		}
		var sub models.Subkategori
		if err := config.DB.First(&sub, *input.SubkategoriID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Subkategori tidak ditemukan", nil)
			return
		}
		kode, err := service.GenerateKodeBarang(config.DB, sub.Nama)
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Gagal membuat kode", err)
			return
		}
		input.Kode = kode
	}

	satuan := input.Satuan
	if satuan == "" {
		satuan = "pcs"
	}
	row := models.Barang{
		Kode:          input.Kode,
		Nama:          input.Nama,
		KategoriID:    input.KategoriID,
		SubkategoriID: input.SubkategoriID,
		Satuan:        satuan,
		HargaBeli:     input.HargaBeli,
		HargaJual:     input.HargaJual,
		StokMinimum:   input.StokMinimum,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, http.StatusBadRequest, "Kode barang sudah digunakan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan barang", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Tambah Barang", row.Kode+" "+row.Nama)
	}
	utils.Created(c, "Barang berhasil ditambahkan", row)
}

func UpdateBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Barang
	if err := config.DB.First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan", nil)
		return
	}

	var input struct {
		Nama          *string `json:"nama"`
		KategoriID    *uint   `json:"kategori_id"`
		SubkategoriID *uint   `json:"subkategori_id"`
		Satuan        *string `json:"satuan"`
		HargaBeli     *int64  `json:"harga_beli"`
		HargaJual     *int64  `json:"harga_jual"`
		StokMinimum   *int    `json:"stok_minimum"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	updates := map[string]any{}
	if input.Nama != nil {
		updates["nama"] = *input.Nama
	}
	if input.KategoriID != nil {
		updates["kategori_id"] = *input.KategoriID
	}
	if input.SubkategoriID != nil {
		updates["subkategori_id"] = *input.SubkategoriID
	}
	if input.Satuan != nil {
		updates["satuan"] = *input.Satuan
	}
	if input.HargaBeli != nil {
		if *input.HargaBeli < 0 {
			utils.Error(c, http.StatusBadRequest, "Harga beli tidak boleh negatif", nil)
			return
		}
		updates["harga_beli"] = *input.HargaBeli
	}
	if input.HargaJual != nil {
		if *input.HargaJual < 0 {
			utils.Error(c, http.StatusBadRequest, "Harga jual tidak boleh negatif", nil)
			return
		}
		updates["harga_jual"] = *input.HargaJual
	}
	if input.StokMinimum != nil {
		updates["stok_minimum"] = *input.StokMinimum
	}
	if len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, "Tidak ada field yang diupdate", nil)
		return
	}

	if err := config.DB.Model(&row).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengubah barang", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Edit Barang", row.Kode+" "+row.Nama)
	}
	utils.Success(c, "Barang diperbarui", row)
}

func DeleteBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var row models.Barang
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan", nil)
		} else {
			utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		}
		return
	}

	if err := config.DB.Delete(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus barang", err)
		return
	}

	if uid, err := currentUserID(c); err == nil {
		service.CatatLog(config.DB, uid, "Hapus Barang", row.Kode+" "+row.Nama)
	}
	utils.Success(c, "Barang dihapus", gin.H{"id": id})
}

// ResetStokBarang menolkan stok satu barang tanpa membuat entri ledger.
func ResetStokBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	prev, err := service.NewLedger(config.DB).ResetStok(c.Request.Context(), uint(id), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Barang tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mereset stok", err)
		return
	}
	utils.Success(c, "Stok direset ke 0", gin.H{"id": id, "stok_sebelumnya": prev})
}
