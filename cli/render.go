package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"superstore-cli/models"
	"superstore-cli/services"
)

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func renderTable(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func renderOrderDetails(out io.Writer, details []services.OrderDetail) {
	header := []string{
		"Order ID", "Order Date", "Ship Date", "Ship Mode",
		"Customer", "Segment", "Country", "City", "State",
		"Product", "Category", "Sub-Category",
		"Quantity", "Discount", "Sales", "Profit",
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
			formatPercent(d.Discount),
			formatMoney(d.Sales),
			formatMoney(d.Profit),
		})
	}
	renderTable(out, header, rows)
	fmt.Fprintf(out, "\nTotal Orders: %d\n", len(details))
}

func renderCustomers(out io.Writer, customers []models.Customer) {
	header := []string{
		"Customer ID", "Customer Name", "Segment", "Country",
		"City", "State", "Postal Code", "Region",
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.CustomerID, c.CustomerName, c.Segment, c.Country,
			c.City, c.State, c.PostalCode, c.Region,
		})
	}
	renderTable(out, header, rows)
	fmt.Fprintf(out, "\nTotal Customers: %d\n", len(customers))
}

func renderProducts(out io.Writer, products []models.Product) {
	header := []string{"Product ID", "Category", "Sub-Category", "Product Name", "Unit Price"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ProductID, p.Category, p.SubCategory, p.ProductName,
			formatMoney(p.UnitPrice),
		})
	}
	renderTable(out, header, rows)
	fmt.Fprintf(out, "\nTotal Products: %d\n", len(products))
}

func renderColumns(out io.Writer, table string, columns []services.ColumnInfo) {
	fmt.Fprintf(out, "\n%s table structure:\n", table)
	header := []string{"Column Name", "Data Type", "Nullable", "Primary Key"}
	rows := make([][]string, 0, len(columns))
	for _, c := range columns {
		rows = append(rows, []string{c.Name, c.DataType, yesNo(c.Nullable), yesNo(c.PrimaryKey)})
	}
	renderTable(out, header, rows)
}

func renderSummary(out io.Writer, summary *services.OrderSummary) {
	fmt.Fprintf(out, "\nOrder Summary:\n-------------\n")
	fmt.Fprintf(out, "Order ID: %s\n", summary.OrderID)
	fmt.Fprintf(out, "Quantity: %d\n", summary.Quantity)
	fmt.Fprintf(out, "Unit Price: %s\n", formatMoney(summary.UnitPrice))
	fmt.Fprintf(out, "Subtotal: %s\n", formatMoney(summary.Subtotal))
	fmt.Fprintf(out, "Discount: %s\n", formatPercent(summary.DiscountRate))
	fmt.Fprintf(out, "Discount Amount: %s\n", formatMoney(summary.DiscountAmount))
	fmt.Fprintf(out, "Final Sales: %s\n", formatMoney(summary.Sales))
	fmt.Fprintf(out, "Profit: %s\n", formatMoney(summary.Profit))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
