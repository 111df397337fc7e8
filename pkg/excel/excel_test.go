package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuild(t *testing.T) {
	data, err := Build(
		Sheet{
			Name:    "Revenue",
			Headers: []string{"Period", "Revenue", "Orders"},
			Widths:  []float64{15, 18, 10},
			Rows: [][]interface{}{
				{"05/03/2025", 300, 2},
				{"12/03/2025", 300, 1},
			},
		},
		Sheet{
			Name:    "Top Products",
			Headers: []string{"Product", "Quantity", "Revenue"},
			Rows: [][]interface{}{
				{"Oak Chair", 3, 300},
			},
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Revenue", "Top Products"}, f.GetSheetList())

	header, err := f.GetCellValue("Revenue", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Period", header)

	cell, err := f.GetCellValue("Revenue", "B2")
	require.NoError(t, err)
	assert.Equal(t, "300", cell)

	product, err := f.GetCellValue("Top Products", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Oak Chair", product)
}

func TestBuild_NoSheets(t *testing.T) {
	data, err := Build()
	assert.Error(t, err)
	assert.Nil(t, data)
}
