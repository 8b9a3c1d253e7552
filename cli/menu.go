package cli

import (
	"fmt"
	"io"

	"gorm.io/gorm"

	"superstore-cli/models"
	"superstore-cli/services"
)

// Menu is the interactive controller. It owns no business logic: every choice
// dispatches into a service and every error is printed, never fatal.
type Menu struct {
	p       *prompter
	orders  *services.OrderService
	updates *services.UpdateService
	deletes *services.DeletionService
	queries *services.QueryService
	exports *services.ExportService
	schema  *services.SchemaService
}

// NewMenu wires the menu to the store handle and I/O streams
func NewMenu(db *gorm.DB, exportDir string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		p:       newPrompter(in, out),
		orders:  services.NewOrderService(db),
		updates: services.NewUpdateService(db),
		deletes: services.NewDeletionService(db),
		queries: services.NewQueryService(db),
		exports: services.NewExportService(db, exportDir),
		schema:  services.NewSchemaService(db),
	}
}

// Run drives the main menu until the user exits
func (m *Menu) Run() {
	for {
		m.p.println("\n1. Show Records \n2. Insert Records \n3. Update Records \n4. Delete Records")
		m.p.println("5. Alter Table \n6. Describe Table \n7. Download as CSV \n8. Exit")
		choice := m.p.ask("Enter your choice")
		if m.p.done() {
			m.p.println("\nExiting the program.")
			return
		}

		switch choice {
		case "1":
			m.showRecords()
		case "2":
			m.insertRecord()
		case "3":
			m.updateRecords()
		case "4":
			m.deleteRecords()
		case "5":
			m.alterTable()
		case "6":
			m.describeTable()
		case "7":
			m.exportCSV()
		case "8":
			m.p.println("Exiting the program.")
			return
		default:
			m.p.println("Invalid choice. Please choose again.")
		}
	}
}

func (m *Menu) showRecords() {
	for {
		m.p.println("\nWhich table would you like to view?")
		m.p.println("1. Orders (with full details)\n2. Customers\n3. Products\n4. Back to main menu")
		choice := m.p.ask("Enter your choice")
		if m.p.done() {
			return
		}

		switch choice {
		case "1":
			details, err := m.queries.ListOrderDetails()
			if err != nil {
				m.reportError(err)
				continue
			}
			if len(details) == 0 {
				m.p.println("No orders found.")
				continue
			}
			renderOrderDetails(m.p.out, details)
		case "2":
			customers, err := m.queries.ListCustomers()
			if err != nil {
				m.reportError(err)
				continue
			}
			if len(customers) == 0 {
				m.p.println("No customers found.")
				continue
			}
			renderCustomers(m.p.out, customers)
		case "3":
			products, err := m.queries.ListProducts()
			if err != nil {
				m.reportError(err)
				continue
			}
			if len(products) == 0 {
				m.p.println("No products found.")
				continue
			}
			renderProducts(m.p.out, products)
		case "4":
			return
		default:
			m.p.println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) insertRecord() {
	m.p.println("\nCustomer Details:")
	customerID := m.p.ask("Enter Customer ID")
	if m.p.done() {
		return
	}

	exists, err := m.orders.CustomerExists(customerID)
	if err != nil {
		m.reportError(err)
		return
	}

	var newCustomer *services.NewCustomerInput
	if !exists {
		input, promptErr := m.promptNewCustomer()
		if promptErr != nil {
			return
		}
		newCustomer = input
	}

	products, err := m.queries.ListProducts()
	if err != nil {
		m.reportError(err)
		return
	}
	m.p.println("\nAvailable Products:")
	for _, p := range products {
		m.p.printf("ID: %s, Name: %s, Category: %s, Price: %s\n",
			p.ProductID, p.ProductName, p.Category, formatMoney(p.UnitPrice))
	}

	orderID := m.p.ask("\nEnter Order ID (leave blank to generate one)")
	orderDate, err := m.p.askDate("Enter Order Date (YYYY-MM-DD)")
	if err != nil {
		return
	}
	shipDate, err := m.p.askDate("Enter Ship Date (YYYY-MM-DD)")
	if err != nil {
		return
	}
	shipMode, err := m.p.askChoice("Available Ship Modes", models.ShipModes)
	if err != nil {
		return
	}
	productID := m.p.ask("Enter Product ID from the list above")
	quantity, err := m.p.askInt("Enter Quantity")
	if err != nil {
		return
	}

	summary, err := m.orders.CreateOrder(services.OrderInput{
		OrderID:     orderID,
		OrderDate:   orderDate,
		ShipDate:    shipDate,
		ShipMode:    shipMode,
		CustomerID:  customerID,
		NewCustomer: newCustomer,
		ProductID:   productID,
		Quantity:    quantity,
	})
	if err != nil {
		m.reportError(err)
		return
	}

	if summary.NewCustomer {
		m.p.println("New customer added successfully!")
	}
	renderSummary(m.p.out, summary)
}

func (m *Menu) promptNewCustomer() (*services.NewCustomerInput, error) {
	name := m.p.ask("Enter Customer Name")
	segment, err := m.p.askChoice("Available Segments", models.Segments)
	if err != nil {
		return nil, err
	}
	country := m.p.ask("Enter Country")
	city := m.p.ask("Enter City")
	state := m.p.ask("Enter State")
	postalCode := m.p.ask("Enter Postal Code")
	region, err := m.p.askChoice("Available Regions", models.Regions)
	if err != nil {
		return nil, err
	}
	return &services.NewCustomerInput{
		CustomerName: name,
		Segment:      segment,
		Country:      country,
		City:         city,
		State:        state,
		PostalCode:   postalCode,
		Region:       region,
	}, nil
}

func (m *Menu) updateRecords() {
	for {
		m.p.println("\n1. Update Order Details \n2. Update Customer Details \n3. Update Product Details")
		m.p.println("4. Update Sales Details \n5. Back to main menu")
		choice := m.p.ask("Enter your choice")
		if m.p.done() {
			return
		}

		if choice == "5" {
			return
		}
		if choice != "1" && choice != "2" && choice != "3" && choice != "4" {
			m.p.println("Invalid choice. Please try again.")
			continue
		}

		orderID := m.p.ask("Enter Order ID of the record to update")

		var err error
		switch choice {
		case "1":
			err = m.updateOrderDetails(orderID)
		case "2":
			err = m.updateCustomerDetails(orderID)
		case "3":
			err = m.updateProductDetails(orderID)
		case "4":
			err = m.updateSalesDetails(orderID)
		}
		if err != nil {
			if m.p.done() {
				return
			}
			m.reportError(err)
			continue
		}
		m.p.println("Record updated successfully!")
	}
}

func (m *Menu) updateOrderDetails(orderID string) error {
	m.p.println("\n1. Ship Mode \n2. Order Date \n3. Ship Date")
	choice := m.p.ask("Enter field to update")

	switch choice {
	case "1":
		shipMode, err := m.p.askChoice("Available Ship Modes", models.ShipModes)
		if err != nil {
			return err
		}
		return m.updates.UpdateOrderField(orderID, "ship_mode", shipMode)
	case "2":
		date, err := m.p.askDate("Enter new Order Date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
		return m.updates.UpdateOrderField(orderID, "order_date", date)
	case "3":
		date, err := m.p.askDate("Enter new Ship Date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
		return m.updates.UpdateOrderField(orderID, "ship_date", date)
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (m *Menu) updateCustomerDetails(orderID string) error {
	m.p.println("\n1. Customer Name \n2. Segment \n3. Country \n4. City \n5. State")
	m.p.println("6. Postal Code \n7. Region")
	choice := m.p.ask("Enter field to update")

	switch choice {
	case "1":
		return m.updates.UpdateCustomerField(orderID, "customer_name", m.p.ask("Enter new Customer Name"))
	case "2":
		segment, err := m.p.askChoice("Available Segments", models.Segments)
		if err != nil {
			return err
		}
		return m.updates.UpdateCustomerField(orderID, "segment", segment)
	case "3":
		return m.updates.UpdateCustomerField(orderID, "country", m.p.ask("Enter new Country"))
	case "4":
		return m.updates.UpdateCustomerField(orderID, "city", m.p.ask("Enter new City"))
	case "5":
		return m.updates.UpdateCustomerField(orderID, "state", m.p.ask("Enter new State"))
	case "6":
		return m.updates.UpdateCustomerField(orderID, "postal_code", m.p.ask("Enter new Postal Code"))
	case "7":
		region, err := m.p.askChoice("Available Regions", models.Regions)
		if err != nil {
			return err
		}
		return m.updates.UpdateCustomerField(orderID, "region", region)
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (m *Menu) updateProductDetails(orderID string) error {
	m.p.println("\n1. Product ID \n2. Category and Sub-Category \n3. Product Name")
	choice := m.p.ask("Enter field to update")

	switch choice {
	case "1":
		return m.updates.UpdateOrderProductRef(orderID, m.p.ask("Enter new Product ID"))
	case "2":
		category, err := m.p.askChoice("Available Categories", models.CategoryNames())
		if err != nil {
			return err
		}
		subCategory, err := m.p.askChoice(fmt.Sprintf("Available Sub-Categories for %s", category), models.Categories[category])
		if err != nil {
			return err
		}
		return m.updates.UpdateProductCategory(orderID, category, subCategory)
	case "3":
		return m.updates.UpdateProductName(orderID, m.p.ask("Enter new Product Name"))
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (m *Menu) updateSalesDetails(orderID string) error {
	m.p.println("\n1. Quantity \n2. Discount \n3. Sales \n4. Profit")
	choice := m.p.ask("Enter field to update")

	switch choice {
	case "1":
		quantity, err := m.p.askInt("Enter new Quantity")
		if err != nil {
			return err
		}
		recompute := m.p.confirm("Recompute discount/sales/profit from the new quantity?")
		return m.updates.UpdateOrderQuantity(orderID, quantity, recompute)
	case "2", "3", "4":
		field := map[string]string{"2": "discount", "3": "sales", "4": "profit"}[choice]
		value, err := m.p.askDecimal(fmt.Sprintf("Enter new %s", field))
		if err != nil {
			return err
		}
		return m.updates.OverrideOrderFinancials(orderID, field, value)
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (m *Menu) deleteRecords() {
	for {
		m.p.println("\n1. Delete by Order ID")
		m.p.println("2. Delete by Customer ID (will delete all related orders)")
		m.p.println("3. Delete by Product ID (will delete all related orders)")
		m.p.println("4. Back to main menu")
		choice := m.p.ask("Enter your choice")
		if m.p.done() {
			return
		}

		confirm := func(orderCount int64) bool {
			return m.p.confirm(fmt.Sprintf("This will delete %d orders. Continue?", orderCount))
		}

		switch choice {
		case "1":
			orderID := m.p.ask("Enter the Order ID to delete")
			if err := m.deletes.DeleteOrder(orderID); err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Order %s deleted successfully\n", orderID)
		case "2":
			customerID := m.p.ask("Enter the Customer ID")
			deleted, err := m.deletes.DeleteCustomer(customerID, confirm)
			if err == services.ErrDeletionDeclined {
				m.p.println("Deletion cancelled.")
				continue
			}
			if err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Customer and %d orders deleted\n", deleted)
		case "3":
			productID := m.p.ask("Enter the Product ID")
			deleted, err := m.deletes.DeleteProduct(productID, confirm)
			if err == services.ErrDeletionDeclined {
				m.p.println("Deletion cancelled.")
				continue
			}
			if err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Product and %d orders deleted\n", deleted)
		case "4":
			return
		default:
			m.p.println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) alterTable() {
	for {
		table, done := m.pickTable("alter")
		if done {
			return
		}

		m.p.printf("\nAltering %s table:\n", table)
		m.p.println("1. Add Column\n2. Rename Column\n3. Rename Table\n4. Back to table selection")
		choice := m.p.ask("Enter your choice")
		if m.p.done() {
			return
		}

		switch choice {
		case "1":
			column := m.p.ask("Enter the new column name")
			sqlType := m.p.ask("Enter the data type for the new column")
			if err := m.schema.AddColumn(table, column, sqlType); err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Column %q successfully added to %s table.\n", column, table)
		case "2":
			oldName := m.p.ask("Enter the current column name")
			newName := m.p.ask("Enter the new column name")
			if err := m.schema.RenameColumn(table, oldName, newName); err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Column renamed from %q to %q in %s table\n", oldName, newName, table)
		case "3":
			newName := m.p.ask("Enter the new table name")
			if err := m.schema.RenameTable(table, newName); err != nil {
				m.reportError(err)
				continue
			}
			m.p.printf("Table %q renamed to %q\n", table, newName)
		case "4":
			continue
		default:
			m.p.println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) describeTable() {
	for {
		table, done := m.pickTable("describe")
		if done {
			return
		}
		columns, err := m.schema.DescribeTable(table)
		if err != nil {
			m.reportError(err)
			continue
		}
		renderColumns(m.p.out, table, columns)
	}
}

func (m *Menu) pickTable(action string) (string, bool) {
	m.p.printf("\nWhich table would you like to %s?\n", action)
	m.p.println("1. Orders\n2. Customers\n3. Products\n4. Back to main menu")
	choice := m.p.ask("Enter your choice")
	if m.p.done() {
		return "", true
	}

	switch choice {
	case "1":
		return "orders", false
	case "2":
		return "customers", false
	case "3":
		return "products", false
	case "4":
		return "", true
	default:
		m.p.println("Invalid choice. Please try again.")
		return m.pickTable(action)
	}
}

func (m *Menu) exportCSV() {
	m.p.println("\nWhich data would you like to export?")
	m.p.println("1. Orders (with full details)\n2. Customers\n3. Products")
	choice := m.p.ask("Enter your choice")
	if m.p.done() {
		return
	}

	var kind services.ExportKind
	switch choice {
	case "1":
		kind = services.ExportOrders
	case "2":
		kind = services.ExportCustomers
	case "3":
		kind = services.ExportProducts
	default:
		m.p.println("Invalid choice")
		return
	}

	path, err := m.exports.Export(kind)
	if err != nil {
		if services.IsNotFound(err) {
			m.p.println("No data to export.")
			return
		}
		m.reportError(err)
		return
	}
	m.p.println("Data successfully exported")
	m.p.printf("Full path: %s\n", path)
}

func (m *Menu) reportError(err error) {
	m.p.printf("Error: %v\n", err)
}
