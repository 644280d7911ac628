package service

import (
	"context"
	"sort"
	"time"

	"toko-inventory/models"

	"gorm.io/gorm"
)

// ===== DTO laporan =====

type RekapFilter struct {
	Start      time.Time
	End        time.Time
	SupplierID *uint
	Query      string // cari di nama/kode barang atau keterangan
}

type RekapSummary struct {
	TotalTransaksi int   `json:"total_transaksi"`
	TotalQty       int   `json:"total_qty"`
	TotalNilai     int64 `json:"total_nilai"` // harga beli x jumlah
}

type ProfitBarangRow struct {
	BarangID   uint   `json:"barang_id"`
	Nama       string `json:"nama"`
	Kode       string `json:"kode"`
	Jumlah     int    `json:"jumlah"`
	Modal      int64  `json:"modal"`
	Pendapatan int64  `json:"pendapatan"`
	Laba       int64  `json:"laba"`
}

type ProfitSummary struct {
	TotalModal      int64 `json:"total_modal"`
	TotalPendapatan int64 `json:"total_pendapatan"`
	TotalLaba       int64 `json:"total_laba"`
}

type ProfitKategoriRow struct {
	Kategori string `json:"kategori"`
	Laba     int64  `json:"laba"`
}

type TopStokRow struct {
	Nama string `json:"nama"`
	Stok int    `json:"stok"`
}

type TopTerjualRow struct {
	Nama   string `json:"nama"`
	Jumlah int    `json:"jumlah"`
}

type StokKategoriRow struct {
	Kategori string `json:"kategori"`
	Stok     int    `json:"stok"`
}

type DashboardStats struct {
	JumlahKategori  int64             `json:"jumlah_kategori"`
	JumlahBarang    int64             `json:"jumlah_barang"`
	TotalStok       int64             `json:"total_stok"`
	StokMenipis     int64             `json:"stok_menipis"`
	LowStock        []models.Barang   `json:"low_stock"`
	TopStok         []TopStokRow      `json:"top_stok"`
	StokPerKategori []StokKategoriRow `json:"stok_per_kategori"`
	TopTerjual      []TopTerjualRow   `json:"top_terjual"`
	ProfitBulanIni  int64             `json:"profit_bulan_ini"`
}

// ===== Service =====

type Laporan interface {
	RekapStokMasuk(ctx context.Context, f RekapFilter) ([]models.StokMasuk, RekapSummary, error)
	RekapStokKeluar(ctx context.Context, f RekapFilter) ([]models.StokKeluar, RekapSummary, error)
	ProfitPerBarang(ctx context.Context, start, end time.Time) ([]ProfitBarangRow, ProfitSummary, error)
	ProfitPerKategori(ctx context.Context, start, end time.Time) ([]ProfitKategoriRow, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type laporan struct{ db *gorm.DB }

func NewLaporan(db *gorm.DB) Laporan { return &laporan{db: db} }

// PeriodeRange menerjemahkan periode harian/mingguan/bulanan ke rentang
// tanggal. Default bulanan.
func PeriodeRange(periode string, now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	switch periode {
	case "harian":
		return end.Add(-24*time.Hour + time.Second), end
	case "mingguan":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
		return start, end
	default: // bulanan
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, end
	}
}

func (s *laporan) RekapStokMasuk(ctx context.Context, f RekapFilter) ([]models.StokMasuk, RekapSummary, error) {
	q := s.db.WithContext(ctx).Model(&models.StokMasuk{}).
		Preload("Barang").
		Preload("Supplier").
		Where("tanggal >= ? AND tanggal <= ?", f.Start, f.End)
	if f.SupplierID != nil {
		q = q.Where("supplier_id = ?", *f.SupplierID)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Joins("JOIN barangs ON barangs.id = stok_masuks.barang_id").
			Where("barangs.nama ILIKE ? OR barangs.kode ILIKE ? OR stok_masuks.keterangan ILIKE ?", like, like, like)
	}

	var rows []models.StokMasuk
	if err := q.Order("tanggal DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, RekapSummary{}, err
	}

	sum := RekapSummary{TotalTransaksi: len(rows)}
	for _, r := range rows {
		sum.TotalQty += r.Jumlah
		if r.Barang != nil {
			sum.TotalNilai += r.Barang.HargaBeli * int64(r.Jumlah)
		}
	}
	return rows, sum, nil
}

func (s *laporan) RekapStokKeluar(ctx context.Context, f RekapFilter) ([]models.StokKeluar, RekapSummary, error) {
	q := s.db.WithContext(ctx).Model(&models.StokKeluar{}).
		Preload("Barang").
		Where("tanggal >= ? AND tanggal <= ?", f.Start, f.End)
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Joins("JOIN barangs ON barangs.id = stok_keluars.barang_id").
			Where("barangs.nama ILIKE ? OR barangs.kode ILIKE ? OR stok_keluars.keterangan ILIKE ?", like, like, like)
	}

	var rows []models.StokKeluar
	if err := q.Order("tanggal DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, RekapSummary{}, err
	}

	sum := RekapSummary{TotalTransaksi: len(rows)}
	for _, r := range rows {
		sum.TotalQty += r.Jumlah
		if r.Barang != nil {
			sum.TotalNilai += r.Barang.HargaBeli * int64(r.Jumlah)
		}
	}
	return rows, sum, nil
}

// ProfitPerBarang mengagregasi stok keluar per barang memakai HitungLaba
// supaya angkanya konsisten dengan dashboard dan detail bon.
func (s *laporan) ProfitPerBarang(ctx context.Context, start, end time.Time) ([]ProfitBarangRow, ProfitSummary, error) {
	var keluar []models.StokKeluar
	if err := s.db.WithContext(ctx).Model(&models.StokKeluar{}).
		Preload("Barang").
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Find(&keluar).Error; err != nil {
		return nil, ProfitSummary{}, err
	}

	byBarang := map[uint]*ProfitBarangRow{}
	for _, d := range keluar {
		if d.Barang == nil {
			continue
		}
		row, ok := byBarang[d.BarangID]
		if !ok {
			row = &ProfitBarangRow{BarangID: d.BarangID, Nama: d.Barang.Nama, Kode: d.Barang.Kode}
			byBarang[d.BarangID] = row
		}
		row.Jumlah += d.Jumlah
		row.Modal += d.Barang.HargaBeli * int64(d.Jumlah)
		row.Pendapatan += d.Barang.HargaJual * int64(d.Jumlah)
		row.Laba += HitungLaba(d.Barang.HargaBeli, d.Barang.HargaJual, d.Jumlah)
	}

	rows := make([]ProfitBarangRow, 0, len(byBarang))
	var sum ProfitSummary
	for _, r := range byBarang {
		rows = append(rows, *r)
		sum.TotalModal += r.Modal
		sum.TotalPendapatan += r.Pendapatan
		sum.TotalLaba += r.Laba
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Laba > rows[j].Laba })
	return rows, sum, nil
}

func (s *laporan) ProfitPerKategori(ctx context.Context, start, end time.Time) ([]ProfitKategoriRow, error) {
	var keluar []models.StokKeluar
	if err := s.db.WithContext(ctx).Model(&models.StokKeluar{}).
		Preload("Barang").
		Preload("Barang.Kategori").
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Find(&keluar).Error; err != nil {
		return nil, err
	}

	byKat := map[string]int64{}
	for _, d := range keluar {
		if d.Barang == nil {
			continue
		}
		nama := "Lainnya"
		if d.Barang.Kategori != nil {
			nama = d.Barang.Kategori.Nama
		}
		byKat[nama] += HitungLaba(d.Barang.HargaBeli, d.Barang.HargaJual, d.Jumlah)
	}

	rows := make([]ProfitKategoriRow, 0, len(byKat))
	for nama, laba := range byKat {
		if laba <= 0 {
			continue
		}
		rows = append(rows, ProfitKategoriRow{Kategori: nama, Laba: laba})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Laba > rows[j].Laba })
	return rows, nil
}

func (s *laporan) Dashboard(ctx context.Context) (DashboardStats, error) {
	db := s.db.WithContext(ctx)
	var stats DashboardStats

	if err := db.Model(&models.Kategori{}).Count(&stats.JumlahKategori).Error; err != nil {
		return stats, err
	}

	var barang []models.Barang
	if err := db.Preload("Kategori").Find(&barang).Error; err != nil {
		return stats, err
	}
	stats.JumlahBarang = int64(len(barang))

	stokKat := map[string]int{}
	for _, b := range barang {
		stats.TotalStok += int64(b.Stok)
		if b.Stok <= b.StokMinimum {
			stats.StokMenipis++
			stats.LowStock = append(stats.LowStock, b)
		}
		nama := "Lainnya"
		if b.Kategori != nil {
			nama = b.Kategori.Nama
		}
		stokKat[nama] += b.Stok
	}

	// top 10 stok tertinggi
	sorted := make([]models.Barang, len(barang))
	copy(sorted, barang)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stok > sorted[j].Stok })
	for i, b := range sorted {
		if i >= 10 {
			break
		}
		stats.TopStok = append(stats.TopStok, TopStokRow{Nama: b.Nama, Stok: b.Stok})
	}

	for nama, stok := range stokKat {
		if stok <= 0 {
			continue
		}
		stats.StokPerKategori = append(stats.StokPerKategori, StokKategoriRow{Kategori: nama, Stok: stok})
	}
	sort.Slice(stats.StokPerKategori, func(i, j int) bool {
		return stats.StokPerKategori[i].Stok > stats.StokPerKategori[j].Stok
	})

	// barang terlaris + profit bulan berjalan
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var keluar []models.StokKeluar
	if err := db.Model(&models.StokKeluar{}).
		Preload("Barang").
		Where("tanggal >= ? AND tanggal <= ?", monthStart, now).
		Find(&keluar).Error; err != nil {
		return stats, err
	}
	terjual := map[uint]*TopTerjualRow{}
	for _, d := range keluar {
		if d.Barang == nil {
			continue
		}
		row, ok := terjual[d.BarangID]
		if !ok {
			row = &TopTerjualRow{Nama: d.Barang.Nama}
			terjual[d.BarangID] = row
		}
		row.Jumlah += d.Jumlah
		stats.ProfitBulanIni += HitungLaba(d.Barang.HargaBeli, d.Barang.HargaJual, d.Jumlah)
	}
	rows := make([]TopTerjualRow, 0, len(terjual))
	for _, r := range terjual {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Jumlah > rows[j].Jumlah })
	if len(rows) > 8 {
		rows = rows[:8]
	}
	stats.TopTerjual = rows

	return stats, nil
}
