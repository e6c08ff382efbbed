package domain

// Currency is a reference entity; accounts are single-currency and there is
// no conversion.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key, e.g. "BRL"
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // Decimal places for display
	AuditFields
}
