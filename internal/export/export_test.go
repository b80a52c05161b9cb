package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/moondogdev/overwhelmed/internal/taxreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureReport() taxreport.Report {
	s := model.Settings{
		TaxCategories: []model.TaxCategory{
			{ID: "supplies", Name: "Office Supplies"},
		},
	}
	open := time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local).UnixMilli()
	tasks := []model.Task{
		{ID: "1", Text: "Client invoice", OpenDate: open, CreatedAt: open, TransactionAmount: 1000, IncomeType: model.IncomeBusiness},
		{ID: "2", Text: "Printer paper", OpenDate: open, CreatedAt: open, TransactionAmount: -40.5, TaxCategoryID: "supplies"},
	}
	return taxreport.Compile(2024, tasks, s)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fixtureReport()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"))
	assert.Contains(t, out, "Section,Date,Description,Amount")
	assert.Contains(t, out, "Business Income (1099),3/5/2024,Client invoice,1000.00")
	assert.Contains(t, out, "Office Supplies,3/5/2024,Printer paper,40.50")
	assert.Contains(t, out, "Totals,,Estimated Net,959.50")
}

func TestWriteCSVDeterministic(t *testing.T) {
	report := fixtureReport()

	var a, b bytes.Buffer
	require.NoError(t, WriteCSV(&a, report))
	require.NoError(t, WriteCSV(&b, report))
	assert.Equal(t, a.String(), b.String())
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(fixtureReport())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Summary", "Income", "Expenses", "Assets"}, f.GetSheetList())

	income, err := f.GetCellValue("Income", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Client invoice", income)

	net, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "959.5", net)
}

func TestBuildWorkbookSummaryMode(t *testing.T) {
	report := taxreport.CompileSummary(nil, model.Settings{})

	f, err := BuildWorkbook(report)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.NotContains(t, f.GetSheetList(), "Assets")
}
