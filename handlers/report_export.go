package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/services"
	"warpmanager/templates"
)

func HandleReportsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return render(e, "Relatórios", templates.ReportsPage())
	}
}

// HandleReportExportCSV downloads the full report as a spreadsheet-friendly
// CSV. If any source fetch fails, nothing is written.
func HandleReportExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, err := services.BuildReportData(app, now)
		if err != nil {
			log.Printf("report_export: could not build report data: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível gerar o relatório")
		}

		filename := fmt.Sprintf("relatorio-completo-%s.csv", now.Format("2006-01-02-150405"))
		e.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(services.GenerateReportCSV(data))
		return err
	}
}

// HandleReportExportHTML downloads the report as a standalone page that
// opens in any browser without the app running.
func HandleReportExportHTML(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, err := services.BuildReportData(app, now)
		if err != nil {
			log.Printf("report_export: could not build report data: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível gerar o relatório")
		}

		filename := fmt.Sprintf("relatorio-warp-%s.html", now.Format("2006-01-02-150405"))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(services.GenerateReportHTML(data))
		return err
	}
}

func HandleReportExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, err := services.BuildReportData(app, now)
		if err != nil {
			log.Printf("report_export: could not build report data: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível gerar o relatório")
		}

		out, err := services.GenerateReportExcel(data)
		if err != nil {
			log.Printf("report_export: could not generate workbook: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível gerar a planilha")
		}

		filename := fmt.Sprintf("relatorio-warp-%s.xlsx", now.Format("2006-01-02-150405"))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(out)
		return err
	}
}
