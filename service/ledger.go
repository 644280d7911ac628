package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toko-inventory/models"
	"toko-inventory/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// batas wajar sekali input; kuantitas di toko ini kecil
const maxJumlah = 1_000_000

// operasi ledger tidak boleh menggantung kalau database macet; lewat
// batas ini error context diteruskan ke pemanggil supaya bisa dicoba ulang
const opTimeout = 5 * time.Second

type StokMasukInput struct {
	BarangID   uint
	SupplierID *uint
	Jumlah     int
	Tanggal    time.Time
	Keterangan string
	UserID     uint
}

type StokKeluarInput struct {
	BarangID   uint
	Jumlah     int
	Tanggal    time.Time
	Keterangan string
	UserID     uint
}

type PenjualanItemInput struct {
	BarangID  uint
	Jumlah    int
	HargaJual int64
}

type PenjualanInput struct {
	Pembeli string
	Tanggal time.Time
	Items   []PenjualanItemInput
	Bayar   int64
	UserID  uint
}

// Ledger menjaga hubungan antara stok barang dan riwayat stok masuk /
// stok keluar / penjualan. Semua pengurangan stok dilakukan sebagai
// conditional update atomik di dalam transaksi supaya stok tidak pernah
// minus walau ada dua sesi yang jalan bersamaan.
type Ledger interface {
	StokMasuk(ctx context.Context, in StokMasukInput) (*models.StokMasuk, error)
	StokKeluar(ctx context.Context, in StokKeluarInput) (*models.StokKeluar, error)
	ResetStok(ctx context.Context, barangID, userID uint) (int, error)
	BuatPenjualan(ctx context.Context, in PenjualanInput) (*models.Penjualan, error)
	HapusStokMasukPeriode(ctx context.Context, start, end time.Time, userID uint) (int64, error)
	HapusStokKeluarPeriode(ctx context.Context, start, end time.Time, userID uint) (int64, error)
}

type ledger struct{ db *gorm.DB }

func NewLedger(db *gorm.DB) Ledger { return &ledger{db: db} }

func (s *ledger) StokMasuk(ctx context.Context, in StokMasukInput) (*models.StokMasuk, error) {
	if in.Jumlah <= 0 {
		return nil, &ValidationError{Msg: "jumlah harus lebih dari 0"}
	}
	if in.Jumlah > maxJumlah {
		return nil, &ValidationError{Msg: fmt.Sprintf("jumlah melebihi batas %d", maxJumlah)}
	}
	if in.Tanggal.IsZero() {
		in.Tanggal = time.Now()
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		entry models.StokMasuk
		brg   models.Barang
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&brg, in.BarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.SupplierID != nil {
			var cnt int64
			if err := tx.Model(&models.Supplier{}).Where("id = ?", *in.SupplierID).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return ErrNotFound
			}
		}

		if err := tx.Model(&models.Barang{}).
			Where("id = ?", in.BarangID).
			UpdateColumn("stok", gorm.Expr("stok + ?", in.Jumlah)).Error; err != nil {
			return err
		}

		entry = models.StokMasuk{
			BarangID:   in.BarangID,
			SupplierID: in.SupplierID,
			Jumlah:     in.Jumlah,
			Tanggal:    in.Tanggal,
			Keterangan: in.Keterangan,
			UserID:     in.UserID,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	CatatLog(s.db, in.UserID, "Stok Masuk", fmt.Sprintf("%s +%d", brg.Nama, in.Jumlah))
	return &entry, nil
}

func (s *ledger) StokKeluar(ctx context.Context, in StokKeluarInput) (*models.StokKeluar, error) {
	if in.Jumlah <= 0 {
		return nil, &ValidationError{Msg: "jumlah harus lebih dari 0"}
	}
	if in.Jumlah > maxJumlah {
		return nil, &ValidationError{Msg: fmt.Sprintf("jumlah melebihi batas %d", maxJumlah)}
	}
	if in.Tanggal.IsZero() {
		in.Tanggal = time.Now()
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		entry models.StokKeluar
		brg   models.Barang
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&brg, in.BarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := kurangiStok(tx, &brg, in.Jumlah); err != nil {
			return err
		}

		entry = models.StokKeluar{
			BarangID:   in.BarangID,
			Jumlah:     in.Jumlah,
			Tanggal:    in.Tanggal,
			Keterangan: in.Keterangan,
			UserID:     in.UserID,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	CatatLog(s.db, in.UserID, "Stok Keluar", fmt.Sprintf("%s -%d", brg.Nama, in.Jumlah))
	return &entry, nil
}

var errNomorBonBentrok = errors.New("nomor bon bentrok")

// balutBentrokNomorBon menandai unique violation nomor bon supaya
// BuatPenjualan tahu transaksi layak dicoba ulang dengan sufiks baru.
func balutBentrokNomorBon(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %v", errNomorBonBentrok, err)
	}
	return err
}

// kurangiStok melakukan pengecekan dan pengurangan stok dalam satu
// statement; RowsAffected == 0 berarti stok tidak cukup.
func kurangiStok(tx *gorm.DB, brg *models.Barang, jumlah int) error {
	dec := tx.Model(&models.Barang{}).
		Where("id = ? AND stok >= ?", brg.ID, jumlah).
		UpdateColumn("stok", gorm.Expr("stok - ?", jumlah))
	if dec.Error != nil {
		return dec.Error
	}
	if dec.RowsAffected == 0 {
		return &InsufficientStockError{
			BarangID: brg.ID,
			Nama:     brg.Nama,
			Tersedia: brg.Stok,
			Diminta:  jumlah,
		}
	}
	return nil
}

// ResetStok menolkan stok tanpa membuat entri ledger. Ini override
// administratif yang memang memutus invariant jumlah-ledger; kuantitas
// sebelumnya direkam di log aktivitas.
func (s *ledger) ResetStok(ctx context.Context, barangID, userID uint) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var brg models.Barang
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&brg, barangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&models.Barang{}).
			Where("id = ?", barangID).
			UpdateColumn("stok", 0).Error
	})
	if err != nil {
		return 0, err
	}

	CatatLog(s.db, userID, "Reset Stok", fmt.Sprintf("%s: reset dari %d", brg.Nama, brg.Stok))
	return brg.Stok, nil
}

// BuatPenjualan menulis header penjualan, item-itemnya, dan entri stok
// keluar padanannya dalam satu transaksi: semua masuk atau tidak sama
// sekali. Di sistem lama ini dikerjakan trigger database; di sini jadi
// langkah eksplisit.
func (s *ledger) BuatPenjualan(ctx context.Context, in PenjualanInput) (*models.Penjualan, error) {
	if len(in.Items) == 0 {
		return nil, &ValidationError{Msg: "keranjang masih kosong"}
	}
	var total int64
	for _, it := range in.Items {
		if it.Jumlah <= 0 || it.Jumlah > maxJumlah {
			return nil, &ValidationError{Msg: "jumlah item tidak valid"}
		}
		if it.HargaJual < 0 {
			return nil, &ValidationError{Msg: "harga jual tidak valid"}
		}
		total += it.HargaJual * int64(it.Jumlah)
	}
	if in.Bayar < total {
		return nil, &PaymentInsufficientError{Total: total, Bayar: in.Bayar}
	}
	if in.Tanggal.IsZero() {
		in.Tanggal = time.Now()
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	const maxRetries = 3
	var (
		hasil   models.Penjualan
		lastErr error
	)
	for i := 0; i < maxRetries; i++ {
		nomorBon := utils.GenNomorBon(in.Tanggal)

		lastErr = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			items := make([]models.PenjualanItem, 0, len(in.Items))
			keluar := make([]models.StokKeluar, 0, len(in.Items))

			for _, it := range in.Items {
				var brg models.Barang
				if err := tx.First(&brg, it.BarangID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrNotFound
					}
					return err
				}
				if err := kurangiStok(tx, &brg, it.Jumlah); err != nil {
					return err
				}
				items = append(items, models.PenjualanItem{
					BarangID:  it.BarangID,
					Jumlah:    it.Jumlah,
					HargaJual: it.HargaJual,
					Subtotal:  it.HargaJual * int64(it.Jumlah),
				})
				keluar = append(keluar, models.StokKeluar{
					BarangID:   it.BarangID,
					Jumlah:     it.Jumlah,
					Tanggal:    in.Tanggal,
					Keterangan: "Penjualan " + nomorBon,
					UserID:     in.UserID,
				})
			}

			hasil = models.Penjualan{
				NomorBon: nomorBon,
				Tanggal:  in.Tanggal,
				Pembeli:  in.Pembeli,
				Total:    total,
				Bayar:    in.Bayar,
				Kembali:  in.Bayar - total,
				UserID:   in.UserID,
				Items:    items,
			}
			if err := tx.Create(&hasil).Error; err != nil {
				return balutBentrokNomorBon(err)
			}
			return tx.Create(&keluar).Error
		})

		if lastErr == nil {
			CatatLog(s.db, in.UserID, "Penjualan",
				fmt.Sprintf("%s - %d item - Rp %d", nomorBon, len(in.Items), total))
			return &hasil, nil
		}
		if !errors.Is(lastErr, errNomorBonBentrok) {
			return nil, lastErr
		}
		// nomor bon bentrok, coba lagi dengan sufiks baru
	}
	return nil, lastErr
}

// HapusStokMasukPeriode menghapus entri stok masuk dalam rentang tanggal
// (fitur "reset data" per periode). Stok barang tidak diubah.
func (s *ledger) HapusStokMasukPeriode(ctx context.Context, start, end time.Time, userID uint) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Delete(&models.StokMasuk{})
	if res.Error != nil {
		return 0, res.Error
	}
	CatatLog(s.db, userID, "Reset Stok Masuk",
		fmt.Sprintf("Data stok masuk periode %s s/d %s dihapus (%d record)",
			start.Format("2006-01-02"), end.Format("2006-01-02"), res.RowsAffected))
	return res.RowsAffected, nil
}

func (s *ledger) HapusStokKeluarPeriode(ctx context.Context, start, end time.Time, userID uint) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Delete(&models.StokKeluar{})
	if res.Error != nil {
		return 0, res.Error
	}
	CatatLog(s.db, userID, "Reset Stok Keluar",
		fmt.Sprintf("Data stok keluar periode %s s/d %s dihapus (%d record)",
			start.Format("2006-01-02"), end.Format("2006-01-02"), res.RowsAffected))
	return res.RowsAffected, nil
}
