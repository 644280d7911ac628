package controllers

import (
	"fmt"
	"net/http"
	"time"

	"toko-inventory/config"
	"toko-inventory/service"
	"toko-inventory/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GET /laporan/profit?periode=bulanan
func ReportProfitPerBarang(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	rows, sum, err := service.NewLaporan(config.DB).ProfitPerBarang(c.Request.Context(), start, end)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    rows,
		"summary": sum,
		"periode": gin.H{
			"start": start.Format("2006-01-02"),
			"end":   end.Format("2006-01-02"),
		},
	})
}

// GET /laporan/profit/kategori?periode=bulanan
func ReportProfitPerKategori(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	rows, err := service.NewLaporan(config.DB).ProfitPerKategori(c.Request.Context(), start, end)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}
	utils.Success(c, "Laba per kategori", rows)
}

// ExportProfitXLSX mengunduh laporan laba per barang sebagai file Excel.
func ExportProfitXLSX(c *gin.Context) {
	start, end, err := rentangPeriode(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Tanggal tidak valid", err)
		return
	}

	rows, sum, err := service.NewLaporan(config.DB).ProfitPerBarang(c.Request.Context(), start, end)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	f := excelize.NewFile()
	sheet := "Laba per Barang"
	index, err := f.NewSheet(sheet)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat worksheet", err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Kode", "Nama Barang", "Jumlah Terjual", "Modal", "Pendapatan", "Laba"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}
	for idx, r := range rows {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Kode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Nama)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Jumlah)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Modal)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Pendapatan)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Laba)
	}
	totalRow := len(rows) + 3
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), sum.TotalModal)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), sum.TotalPendapatan)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), sum.TotalLaba)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"laporan_laba_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menulis file", err)
	}
}
