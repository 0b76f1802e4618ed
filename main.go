package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"warpmanager/collections"
	"warpmanager/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateMissingStatuses(app); err != nil {
			log.Printf("Warning: status migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.NavMiddleware(app))

		// ── Client CRUD ──────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.GET("/clients/create", handlers.HandleClientCreate(app))
		se.Router.POST("/clients", handlers.HandleClientSave(app))
		se.Router.GET("/clients/{id}/edit", handlers.HandleClientEdit(app))
		se.Router.POST("/clients/{id}/save", handlers.HandleClientUpdate(app))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(app))

		// ── Quotation worksheet ──────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/quotations/create", handlers.HandleQuotationCreate(app))
		se.Router.POST("/quotations", handlers.HandleQuotationSave(app))
		se.Router.POST("/quotations/{id}/save", handlers.HandleQuotationUpdate(app))
		se.Router.POST("/quotations/{id}/convert", handlers.HandleQuotationConvert(app))

		// Quotation items (partial updates re-render the items section)
		se.Router.POST("/quotations/{id}/items", handlers.HandleQuotationItemAdd(app))
		se.Router.PATCH("/quotations/{id}/items/{itemId}", handlers.HandleQuotationItemUpdate(app))
		se.Router.DELETE("/quotations/{id}/items/{itemId}", handlers.HandleQuotationItemDelete(app))

		// Quotation view/delete (after specific /quotations/{id}/* routes)
		se.Router.GET("/quotations/{id}", handlers.HandleQuotationEdit(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Budget CRUD ──────────────────────────────────────────
		se.Router.GET("/budgets", handlers.HandleBudgetList(app))
		se.Router.GET("/budgets/create", handlers.HandleBudgetCreate(app))
		se.Router.POST("/budgets", handlers.HandleBudgetSave(app))
		se.Router.GET("/budgets/{id}/edit", handlers.HandleBudgetEdit(app))
		se.Router.POST("/budgets/{id}/save", handlers.HandleBudgetUpdate(app))
		se.Router.GET("/budgets/{id}/export/pdf", handlers.HandleBudgetExportPDF(app))
		se.Router.GET("/budgets/{id}", handlers.HandleBudgetView(app))
		se.Router.DELETE("/budgets/{id}", handlers.HandleBudgetDelete(app))

		// ── Service order CRUD ───────────────────────────────────
		se.Router.GET("/orders", handlers.HandleOrderList(app))
		se.Router.GET("/orders/create", handlers.HandleOrderCreate(app))
		se.Router.POST("/orders", handlers.HandleOrderSave(app))
		se.Router.GET("/orders/{id}/edit", handlers.HandleOrderEdit(app))
		se.Router.POST("/orders/{id}/save", handlers.HandleOrderUpdate(app))
		se.Router.DELETE("/orders/{id}", handlers.HandleOrderDelete(app))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/reports", handlers.HandleReportsPage(app))
		se.Router.GET("/reports/export/csv", handlers.HandleReportExportCSV(app))
		se.Router.GET("/reports/export/html", handlers.HandleReportExportHTML(app))
		se.Router.GET("/reports/export/excel", handlers.HandleReportExportExcel(app))

		// Redirect home to the quotation list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
