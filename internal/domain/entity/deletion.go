package entity

// DeletionPolicy indica cómo se elimina una fila de una tabla de negocio.
type DeletionPolicy int

const (
	// HardDelete elimina la fila.
	HardDelete DeletionPolicy = iota
	// SoftDelete marca active = false y conserva la fila.
	SoftDelete
)

// Tablas de negocio presentes en cada namespace de tenant.
const (
	TableProducts       = "products"
	TablePurchases      = "purchases"
	TableSales          = "sales"
	TableEmployees      = "employees"
	TablePayrollEntries = "payroll_entries"
	TableInvoices       = "invoices"
	TableProviders      = "providers"
	TableClients        = "clients"
	TableCategories     = "categories"
)

// BusinessTables es la lista permitida de tablas calificables por namespace.
var BusinessTables = []string{
	TableProducts, TablePurchases, TableSales, TableEmployees, TablePayrollEntries,
	TableInvoices, TableProviders, TableClients, TableCategories,
}

// los empleados se desactivan: la historia de haberes los referencia.
var deletionPolicies = map[string]DeletionPolicy{
	TableEmployees: SoftDelete,
}

// DeletionPolicyFor devuelve la política de borrado de la tabla.
func DeletionPolicyFor(table string) DeletionPolicy {
	if p, ok := deletionPolicies[table]; ok {
		return p
	}
	return HardDelete
}
