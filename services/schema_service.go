package services

import (
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// SchemaService exposes administrative schema operations: describing tables
// and free-form ALTER TABLE commands. It sits outside the order/financial
// core; nothing here touches row data.
type SchemaService struct {
	db *gorm.DB
}

// NewSchemaService creates a SchemaService bound to a store handle
func NewSchemaService(db *gorm.DB) *SchemaService {
	return &SchemaService{db: db}
}

// ManagedTables are the tables the tool administers
var ManagedTables = []string{"orders", "customers", "products"}

// ColumnInfo describes one column of a table
type ColumnInfo struct {
	Name       string
	DataType   string
	Nullable   bool
	PrimaryKey bool
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// column types may carry a length, e.g. VARCHAR(20)
var typePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\([0-9]+(,[0-9]+)?\))?$`)

// DescribeTable returns the column layout of a table
func (s *SchemaService) DescribeTable(table string) ([]ColumnInfo, error) {
	if err := validIdentifier("table", table); err != nil {
		return nil, err
	}
	if !s.db.Migrator().HasTable(table) {
		return nil, &NotFoundError{Entity: "table", ID: table}
	}

	columnTypes, err := s.db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, &StoreError{Op: "describe table", Err: err}
	}

	columns := make([]ColumnInfo, 0, len(columnTypes))
	for _, ct := range columnTypes {
		nullable, _ := ct.Nullable()
		pk, _ := ct.PrimaryKey()
		columns = append(columns, ColumnInfo{
			Name:       ct.Name(),
			DataType:   ct.DatabaseTypeName(),
			Nullable:   nullable,
			PrimaryKey: pk,
		})
	}
	return columns, nil
}

// AddColumn appends a column to a table
func (s *SchemaService) AddColumn(table, column, sqlType string) error {
	if err := validIdentifiers(map[string]string{"table": table, "column": column}); err != nil {
		return err
	}
	if !typePattern.MatchString(sqlType) {
		return &ValidationError{Field: "data type", Reason: fmt.Sprintf("%q is not a valid column type", sqlType)}
	}
	sql := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, sqlType)
	if err := s.db.Exec(sql).Error; err != nil {
		return &StoreError{Op: "add column", Err: err}
	}
	return nil
}

// RenameColumn renames a column in a table
func (s *SchemaService) RenameColumn(table, oldName, newName string) error {
	if err := validIdentifiers(map[string]string{"table": table, "column": oldName, "new column": newName}); err != nil {
		return err
	}
	if err := s.db.Migrator().RenameColumn(table, oldName, newName); err != nil {
		return &StoreError{Op: "rename column", Err: err}
	}
	return nil
}

// RenameTable renames a table
func (s *SchemaService) RenameTable(oldName, newName string) error {
	if err := validIdentifiers(map[string]string{"table": oldName, "new table": newName}); err != nil {
		return err
	}
	if err := s.db.Migrator().RenameTable(oldName, newName); err != nil {
		return &StoreError{Op: "rename table", Err: err}
	}
	return nil
}

func validIdentifier(field, value string) error {
	if !identifierPattern.MatchString(value) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a valid SQL identifier", value)}
	}
	return nil
}

func validIdentifiers(fields map[string]string) error {
	for field, value := range fields {
		if err := validIdentifier(field, value); err != nil {
			return err
		}
	}
	return nil
}
