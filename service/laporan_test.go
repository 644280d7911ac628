package service

import (
	"context"
	"testing"
	"time"

	"toko-inventory/models"
)

func TestPeriodeRange(t *testing.T) {
	now := time.Date(2026, 8, 19, 14, 30, 0, 0, time.UTC)

	start, end := PeriodeRange("harian", now)
	if start.Day() != 19 || end.Day() != 19 {
		t.Errorf("harian = %v s/d %v, mau satu hari yang sama", start, end)
	}

	start, end = PeriodeRange("mingguan", now)
	if start.Day() != 13 || start.Month() != 8 {
		t.Errorf("mingguan mulai %v, mau 13 Agustus", start)
	}
	if end.Day() != 19 {
		t.Errorf("mingguan selesai %v, mau 19 Agustus", end)
	}

	start, _ = PeriodeRange("bulanan", now)
	if start.Day() != 1 || start.Month() != 8 {
		t.Errorf("bulanan mulai %v, mau 1 Agustus", start)
	}

	// periode tak dikenal jatuh ke bulanan
	fallback, _ := PeriodeRange("tahunan", now)
	if !fallback.Equal(start) {
		t.Errorf("fallback mulai %v, mau %v", fallback, start)
	}
}

func TestProfitPerBarang(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedger(db)
	semen := buatBarang(t, db, "SMN-001", 100, 50000, 65000)
	kabel := buatBarang(t, db, "KBL-001", 100, 8000, 12000)
	ctx := context.Background()

	tgl := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	penarikan := []struct {
		barang *models.Barang
		jumlah int
	}{
		{semen, 10},
		{semen, 5},
		{kabel, 20},
	}
	for _, p := range penarikan {
		if _, err := svc.StokKeluar(ctx, StokKeluarInput{
			BarangID: p.barang.ID,
			Jumlah:   p.jumlah,
			Tanggal:  tgl,
			UserID:   1,
		}); err != nil {
			t.Fatalf("stok keluar: %v", err)
		}
	}

	rows, sum, err := NewLaporan(db).ProfitPerBarang(ctx,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("profit per barang: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d, mau 2", len(rows))
	}

	// diurutkan laba tertinggi dulu: semen 15*15000 > kabel 20*4000
	if rows[0].Kode != "SMN-001" {
		t.Errorf("baris pertama = %s, mau SMN-001", rows[0].Kode)
	}
	if rows[0].Jumlah != 15 {
		t.Errorf("jumlah semen = %d, mau 15", rows[0].Jumlah)
	}
	wantLabaSemen := HitungLaba(50000, 65000, 15)
	if rows[0].Laba != wantLabaSemen {
		t.Errorf("laba semen = %d, mau %d", rows[0].Laba, wantLabaSemen)
	}

	wantLabaKabel := HitungLaba(8000, 12000, 20)
	if sum.TotalLaba != wantLabaSemen+wantLabaKabel {
		t.Errorf("total laba = %d, mau %d", sum.TotalLaba, wantLabaSemen+wantLabaKabel)
	}

	// di luar rentang tidak terhitung
	kosong, _, err := NewLaporan(db).ProfitPerBarang(ctx,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("profit per barang: %v", err)
	}
	if len(kosong) != 0 {
		t.Errorf("baris di luar periode = %d, mau 0", len(kosong))
	}
}
