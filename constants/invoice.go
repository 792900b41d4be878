package constants

// DocType distinguishes issued (income) from received (expense) invoices.
const (
	DocTypeIncome  = "income"
	DocTypeExpense = "expense"
)

var DocTypes = []string{DocTypeIncome, DocTypeExpense}

// InvoiceClasses holds the fiscal class letters.
var InvoiceClasses = []string{"A", "B", "C"}

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentOverdue}

// Invoice provenance.
const (
	SourceManual    = "manual"
	SourceExtracted = "extracted"
	SourceImport    = "import"
)

var InvoiceSources = []string{SourceManual, SourceExtracted, SourceImport}

// Party kinds.
const (
	PartyClient   = "client"
	PartyProvider = "provider"
)

var PartyKinds = []string{PartyClient, PartyProvider}
