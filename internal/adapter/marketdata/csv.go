package marketdata

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
)

// csvRow mirrors one line of a market table file. The optional columns are
// kept as strings so an empty cell maps to an absent attribute instead of
// a parse error.
type csvRow struct {
	Symbol     string `csv:"symbol"`
	Price      string `csv:"price"`
	Change     string `csv:"change"`
	MarketCap  string `csv:"market_cap"`
	Volatility string `csv:"volatility"`
}

// CSVSource loads the snapshot pair from two CSV files with a
// symbol,price,change,market_cap,volatility header. Optional columns may
// be left empty or omitted entirely.
type CSVSource struct {
	initialPath string
	finalPath   string
}

// NewCSVSource creates a CSVSource over the given file paths
func NewCSVSource(initialPath, finalPath string) *CSVSource {
	return &CSVSource{
		initialPath: initialPath,
		finalPath:   finalPath,
	}
}

// Initial implements domain.SnapshotSource
func (c *CSVSource) Initial(_ context.Context) (*domain.Snapshot, error) {
	return loadSnapshot(c.initialPath)
}

// Final implements domain.SnapshotSource
func (c *CSVSource) Final(_ context.Context) (*domain.Snapshot, error) {
	return loadSnapshot(c.finalPath)
}

func loadSnapshot(path string) (*domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open market table %s: %w", path, err)
	}
	defer f.Close()

	var rows []csvRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse market table %s: %w", path, err)
	}

	listing := make([]domain.Instrument, 0, len(rows))
	for i, row := range rows {
		inst, err := rowToInstrument(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		listing = append(listing, inst)
	}

	return domain.NewSnapshot(listing)
}

func rowToInstrument(row csvRow) (domain.Instrument, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return domain.Instrument{}, fmt.Errorf("bad price %q: %w", row.Price, err)
	}

	inst := domain.Instrument{
		Symbol: row.Symbol,
		Price:  price,
	}

	if inst.Change, err = optionalDecimal(row.Change); err != nil {
		return domain.Instrument{}, fmt.Errorf("bad change %q: %w", row.Change, err)
	}
	if inst.MarketCap, err = optionalDecimal(row.MarketCap); err != nil {
		return domain.Instrument{}, fmt.Errorf("bad market cap %q: %w", row.MarketCap, err)
	}
	if inst.Volatility, err = optionalDecimal(row.Volatility); err != nil {
		return domain.Instrument{}, fmt.Errorf("bad volatility %q: %w", row.Volatility, err)
	}

	return inst, nil
}

func optionalDecimal(cell string) (*decimal.Decimal, error) {
	if cell == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
