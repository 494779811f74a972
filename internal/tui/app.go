// Package tui is the terminal presentation of the dashboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/services"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const chartWidth = 60

// App is the terminal dashboard. All widget state is touched only from the
// tview event loop; background loads hand results back via QueueUpdateDraw.
type App struct {
	app     *tview.Application
	service services.DashboardServiceInterface
	logger  *slog.Logger

	nameInput   *tview.InputField
	amountInput *tview.InputField
	table       *tview.Table
	chart       *tview.TextView
	footer      *tview.TextView

	ctx      context.Context
	state    models.DashboardState
	rows     []TableRow
	loadOnce sync.Once
	loading  bool
}

// New builds the widgets and key bindings
func New(service services.DashboardServiceInterface, logger *slog.Logger) *App {
	a := &App{
		app:     tview.NewApplication(),
		ctx:     context.Background(),
		service: service,
		logger:  logger,
	}

	a.nameInput = tview.NewInputField().
		SetLabel("Name: ").
		SetPlaceholder("Filter by customer name").
		SetFieldWidth(30)
	a.nameInput.SetChangedFunc(func(text string) {
		a.state.Filter.NameFilter = text
		a.refresh()
	})

	a.amountInput = tview.NewInputField().
		SetLabel("Amount: ").
		SetPlaceholder("Filter by transaction amount").
		SetFieldWidth(20)
	a.amountInput.SetChangedFunc(func(text string) {
		a.state.Filter.AmountFilter = text
		a.refresh()
	})

	a.table = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.table.SetBorder(true).SetTitle(" Customers and Transactions ")
	a.table.SetSelectedFunc(func(row, column int) {
		a.selectRow(row)
	})

	a.chart = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	a.chart.SetBorder(true).SetTitle(" Chart ")

	a.footer = tview.NewTextView().SetDynamicColors(true)

	a.setupKeyBindings()
	a.refresh()
	return a
}

// Run starts the event loop and loads the collections in the background
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	a.loadOnce.Do(func() {
		go a.load(ctx, false)
	})

	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()

	return a.app.SetRoot(a.layout(), true).SetFocus(a.nameInput).Run()
}

func (a *App) layout() tview.Primitive {
	filters := tview.NewFlex().
		AddItem(a.nameInput, 0, 1, true).
		AddItem(a.amountInput, 0, 1, false)

	body := tview.NewFlex().
		AddItem(a.table, 0, 3, false).
		AddItem(a.chart, chartWidth+4, 0, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(filters, 1, 0, true).
		AddItem(body, 0, 1, false).
		AddItem(a.footer, 1, 0, false)
}

func (a *App) setupKeyBindings() {
	focusOrder := []tview.Primitive{a.nameInput, a.amountInput, a.table}

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			current := 0
			for i, p := range focusOrder {
				if a.app.GetFocus() == p {
					current = i
				}
			}
			step := 1
			if event.Key() == tcell.KeyBacktab {
				step = len(focusOrder) - 1
			}
			a.app.SetFocus(focusOrder[(current+step)%len(focusOrder)])
			return nil
		case tcell.KeyEscape:
			a.app.SetFocus(a.table)
			return nil
		}

		// Letter shortcuts only apply outside the filter inputs
		if a.app.GetFocus() != a.table {
			return event
		}

		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'r':
			go a.load(a.ctx, true)
			return nil
		}
		return event
	})
}

func (a *App) load(ctx context.Context, reload bool) {
	a.app.QueueUpdateDraw(func() {
		a.loading = true
		a.renderFooter()
	})

	var result models.LoadResult
	var err error
	if reload {
		result, err = a.service.Reload(ctx)
	} else {
		result = a.service.Load(ctx)
	}

	if err != nil {
		a.logger.Warn("Reload rejected", "error", err)
	}

	a.app.QueueUpdateDraw(func() {
		a.loading = false
		a.refresh()
		if err != nil {
			a.footer.SetText(fmt.Sprintf("[red]Reload rejected: %v[-]", err))
			return
		}
		if failed := result.Failed(); len(failed) > 0 {
			names := make([]string, len(failed))
			for i, r := range failed {
				names[i] = string(r)
			}
			a.footer.SetText(fmt.Sprintf("[yellow]Could not load %s[-]  %s", strings.Join(names, ", "), helpText))
		}
	})
}

const helpText = "[gray]Tab: next field  Enter: chart  r: reload  q: quit[-]"

func (a *App) selectRow(row int) {
	index := row - 1
	if index < 0 || index >= len(a.rows) {
		return
	}
	a.state.Selection = a.state.Selection.Select(a.rows[index].CustomerID)
	a.refresh()
}

// refresh rebuilds the table and chart from the current state
func (a *App) refresh() {
	view := a.service.View(a.state)
	a.rows = TableRows(view)

	a.table.Clear()
	for col, title := range tableHeader {
		a.table.SetCell(0, col, tview.NewTableCell("[yellow::b]"+title+"[-::-]").
			SetSelectable(false))
	}

	if len(a.rows) == 0 {
		a.table.SetCell(1, 0, tview.NewTableCell("No customers match the current filters").
			SetSelectable(false))
	}

	for i, row := range a.rows {
		a.table.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(row.Name)))
		a.table.SetCell(i+1, 1, tview.NewTableCell(tview.Escape(row.Date)))
		a.table.SetCell(i+1, 2, tview.NewTableCell(row.Amount).SetAlign(tview.AlignRight))
	}

	if view.HasChart() {
		a.chart.SetText(RenderBarChart(*view.Chart, chartWidth))
	} else {
		a.chart.SetText("[gray]Select a customer and press Enter[-]")
	}

	a.renderFooter()
}

func (a *App) renderFooter() {
	snapshot := a.service.Snapshot()
	status := fmt.Sprintf("%d customers, %d transactions", len(snapshot.Customers), len(snapshot.Transactions))
	if a.loading {
		status = "Loading..."
	}
	a.footer.SetText(status + "  " + helpText)
}
