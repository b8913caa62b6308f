// Package integration exercises the full pipeline across every supported
// statement format: detection, parsing, and CSV output.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/factory"
	"msalas/statement-csv/internal/logging"
)

const banamexSample = `Detalle de Operaciones
FECHA CONCEPTO RETIROS DEPOSITOS SALDO
03 MAR PAGO RECIBIDO GRACIAS
1,000.00 3,500.00
07 MAR RETIRO CAJERO
185.00 3,315.00
Resumen Operaciones
`

const chaseSample = `DEPOSITS AND ADDITIONS
01/06 Remote Online Deposit 1,250.00
Total Deposits and Additions $1,250.00
`

const citiSample = `MANUEL SALAS
Card ending in 1234
Standard Purchases
12/09 12/10 DAIRY QUEEN TUCSON AZ $11.50
CARDHOLDER SUMMARY
`

const wellsFargoSample = `Transaction history
Date Number Description Deposits/ Withdrawals/ Ending daily
1/7 Online Transfer From Savings 500.00 3,500.00
Totals $500.00
`

func TestDetectAndConvertAllFormats(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		content  string
		want     factory.ParserType
		csvHas   []string
	}{
		{
			name:     "banamex",
			fileName: "banamex-mar-2025.txt",
			content:  banamexSample,
			want:     factory.Banamex,
			// Pesos convert to dollars at the fixed rate.
			csvHas: []string{"2025-03-03,PAGO RECIBIDO GRACIAS,,54.05", "2025-03-07,RETIRO CAJERO,10.00,"},
		},
		{
			name:     "chase",
			fileName: "chase-jan-2025.txt",
			content:  chaseSample,
			want:     factory.Chase,
			csvHas:   []string{"2025-01-06,Remote Online Deposit,,1250.00"},
		},
		{
			name:     "citi",
			fileName: "citi-jan-2025.txt",
			content:  citiSample,
			want:     factory.Citi,
			// December activity on a January statement belongs to the prior year.
			csvHas: []string{"2024-12-09,DAIRY QUEEN TUCSON AZ,11.50,,MANUEL SALAS"},
		},
		{
			name:     "wellsfargo",
			fileName: "wellsfargo-jan-2025.txt",
			content:  wellsFargoSample,
			want:     factory.WellsFargo,
			csvHas:   []string{"2025-01-07,Online Transfer From Savings,,500.00"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			inputFile := filepath.Join(dir, tc.fileName)
			outputFile := filepath.Join(dir, "out.csv")
			require.NoError(t, os.WriteFile(inputFile, []byte(tc.content), 0o600))

			logger := &logging.MockLogger{}
			detected, err := factory.DetectType(inputFile, logger)
			require.NoError(t, err)
			assert.Equal(t, tc.want, detected)

			p, err := factory.GetParserWithLogger(detected, logger)
			require.NoError(t, err)
			require.NoError(t, p.ConvertToCSV(inputFile, outputFile))

			data, err := os.ReadFile(outputFile)
			require.NoError(t, err)
			for _, fragment := range tc.csvHas {
				assert.Contains(t, string(data), fragment)
			}
		})
	}
}

func TestDetectType_UnknownLayout(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "mystery.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte("nothing recognizable here\n"), 0o600))

	_, err := factory.DetectType(inputFile, &logging.MockLogger{})
	assert.Error(t, err)
}
