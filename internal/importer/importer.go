package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shop-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	UpsertBySKU(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	UpsertByName(ctx context.Context, name string) (*domain.ProductCategory, error)
}

var requiredColumns = []string{"sku", "name", "unitPrice", "category"}

// CSVImporter reads a product catalog CSV and upserts each row by SKU.
// Columns: sku, name, description, unitPrice, imageUrl, unitsInStock,
// category, active. Only sku, name, unitPrice and category are required.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter

	categoryIDs map[string]int64
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:      csvr,
		products:    products,
		categories:  categories,
		categoryIDs: map[string]int64{},
	}
}

// Run stops at the first invalid row and returns how many rows were saved before it.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}
		line, _ := i.reader.FieldPos(0)

		p, category, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if p.CategoryID, err = i.categoryID(ctx, category); err != nil {
			return imported, fmt.Errorf("line %d: category %q: %w", line, category, err)
		}
		if _, err := i.products.UpsertBySKU(ctx, p); err != nil {
			return imported, fmt.Errorf("line %d: upsert product %q: %w", line, p.SKU, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) categoryID(ctx context.Context, name string) (int64, error) {
	if id, ok := i.categoryIDs[name]; ok {
		return id, nil
	}
	c, err := i.categories.UpsertByName(ctx, name)
	if err != nil {
		return 0, err
	}
	i.categoryIDs[name] = c.ID
	return c.ID, nil
}

func parseRow(record []string, index map[string]int) (domain.Product, string, error) {
	p := domain.Product{
		SKU:         pick(record, index, "sku"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		ImageURL:    pick(record, index, "imageUrl"),
		Active:      true,
	}
	category := pick(record, index, "category")
	if p.SKU == "" || p.Name == "" || category == "" {
		return p, "", fmt.Errorf("sku, name and category are required")
	}

	price, err := decimal.NewFromString(pick(record, index, "unitPrice"))
	if err != nil {
		return p, "", fmt.Errorf("invalid unitPrice for %q: %w", p.SKU, err)
	}
	if price.IsNegative() {
		return p, "", fmt.Errorf("negative unitPrice for %q", p.SKU)
	}
	p.UnitPrice = price

	if raw := pick(record, index, "unitsInStock"); raw != "" {
		if p.UnitsInStock, err = strconv.Atoi(raw); err != nil {
			return p, "", fmt.Errorf("invalid unitsInStock for %q: %w", p.SKU, err)
		}
	}
	if raw := pick(record, index, "active"); raw != "" {
		if p.Active, err = strconv.ParseBool(raw); err != nil {
			return p, "", fmt.Errorf("invalid active flag for %q: %w", p.SKU, err)
		}
	}
	return p, category, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
