package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"superstore-cli/models"
)

// ExportKind selects which shape to export
type ExportKind string

const (
	ExportOrders    ExportKind = "orders"
	ExportCustomers ExportKind = "customers"
	ExportProducts  ExportKind = "products"
)

var ordersExportHeader = []string{
	"Order ID", "Order Date", "Ship Date", "Ship Mode",
	"Customer", "Segment", "Country", "City", "State",
	"Product", "Category", "Sub-Category",
	"Quantity", "Discount", "Sales", "Profit",
}

var customersExportHeader = []string{
	"Customer ID", "Customer Name", "Segment", "Country",
	"City", "State", "Postal Code", "Region",
}

var productsExportHeader = []string{
	"Product ID", "Category", "Sub-Category", "Product Name", "Unit Price",
}

// ExportService writes one of the three record shapes to a timestamped CSV
// file, and hands the file to the export uploader when one is configured.
type ExportService struct {
	queries   *QueryService
	exportDir string
}

// NewExportService creates an ExportService writing into exportDir
func NewExportService(db *gorm.DB, exportDir string) *ExportService {
	return &ExportService{queries: NewQueryService(db), exportDir: exportDir}
}

// Export writes the selected shape to disk and returns the absolute path of
// the file. An upload failure does not fail the export; the local file is the
// source of truth.
func (s *ExportService) Export(kind ExportKind) (string, error) {
	header, rows, err := s.collect(kind)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", &NotFoundError{Entity: string(kind), ID: "(no rows to export)"}
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("superstore_%s_%s.csv", kind, timestamp)
	path := filepath.Join(s.exportDir, filename)

	if err := writeCSV(path, header, rows); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	if uploader := GetExportUploader(); uploader != nil {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Printf("warning: export written but could not be read back for upload: %v", readErr)
			return absPath, nil
		}
		key, uploadErr := uploader.UploadExport(filename, content)
		if uploadErr != nil {
			log.Printf("warning: failed to upload export to S3: %v", uploadErr)
		} else {
			log.Printf("Export uploaded to S3 as %s", key)
		}
	}

	return absPath, nil
}

func (s *ExportService) collect(kind ExportKind) ([]string, [][]string, error) {
	switch kind {
	case ExportOrders:
		details, err := s.queries.ListOrderDetails()
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]string, 0, len(details))
		for _, d := range details {
			rows = append(rows, []string{
				d.OrderID,
				d.OrderDate.Format(models.DateLayout),
				d.ShipDate.Format(models.DateLayout),
				d.ShipMode,
				d.CustomerName, d.Segment, d.Country, d.City, d.State,
				d.ProductName, d.Category, d.SubCategory,
				fmt.Sprintf("%d", d.Quantity),
				d.Discount.StringFixed(2),
				d.Sales.StringFixed(2),
				d.Profit.StringFixed(2),
			})
		}
		return ordersExportHeader, rows, nil
	case ExportCustomers:
		customers, err := s.queries.ListCustomers()
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]string, 0, len(customers))
		for _, c := range customers {
			rows = append(rows, []string{
				c.CustomerID, c.CustomerName, c.Segment, c.Country,
				c.City, c.State, c.PostalCode, c.Region,
			})
		}
		return customersExportHeader, rows, nil
	case ExportProducts:
		products, err := s.queries.ListProducts()
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{
				p.ProductID, p.Category, p.SubCategory, p.ProductName,
				p.UnitPrice.StringFixed(2),
			})
		}
		return productsExportHeader, rows, nil
	default:
		return nil, nil, &ValidationError{Field: "export kind", Reason: fmt.Sprintf("%q is not an exportable shape", kind)}
	}
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return &StoreError{Op: "create export file", Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("warning: failed to close export file: %v", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return &StoreError{Op: "write export header", Err: err}
	}
	if err := w.WriteAll(rows); err != nil {
		return &StoreError{Op: "write export rows", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StoreError{Op: "flush export", Err: err}
	}
	return nil
}
