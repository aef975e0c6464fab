package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supported currency codes. SOM is the reference currency all feed rates are
// quoted against.
const (
	CurrencySOM = "SOM"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyRUB = "RUB"
	CurrencyKZT = "KZT"
)

// ReferenceCurrency is the hub currency for cross-rate computation.
const ReferenceCurrency = CurrencySOM

var supportedCurrencies = map[string]struct{}{
	CurrencySOM: {},
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyRUB: {},
	CurrencyKZT: {},
}

// IsSupportedCurrency reports whether code belongs to the closed currency set.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}

// SupportedCurrencies lists the closed currency set in a fixed order.
func SupportedCurrencies() []string {
	return []string{CurrencySOM, CurrencyUSD, CurrencyEUR, CurrencyRUB, CurrencyKZT}
}

// ExchangeRate is one directed base->target rate. At most one record exists
// per ordered pair; rate(A->B) is independent of rate(B->A) unless the
// synchronizer has written both.
type ExchangeRate struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	BaseCurrency   string             `json:"baseCurrency" bson:"baseCurrency"`
	TargetCurrency string             `json:"targetCurrency" bson:"targetCurrency"`
	Rate           float64            `json:"rate" bson:"rate"`
	LastUpdated    time.Time          `json:"lastUpdated" bson:"lastUpdated"`
}

// Payment period values
const (
	PaymentPeriodDaily   = "daily"
	PaymentPeriodWeekly  = "weekly"
	PaymentPeriodMonthly = "monthly"
	PaymentPeriodYearly  = "yearly"
)

// PaymentPeriods lists the valid payment period values.
func PaymentPeriods() []string {
	return []string{PaymentPeriodDaily, PaymentPeriodWeekly, PaymentPeriodMonthly, PaymentPeriodYearly}
}

// Option is a UI reference entry served by the constants endpoint.
type Option struct {
	Title string `json:"title"`
	Value string `json:"value"`
	ID    int    `json:"id"`
	Icon  string `json:"icon,omitempty"`
}

// CurrencyOptions mirrors the currency picker shown by the frontend.
func CurrencyOptions() []Option {
	return []Option{
		{Title: "Сом", Value: CurrencySOM, ID: 1, Icon: "⃀"},
		{Title: "USD", Value: CurrencyUSD, ID: 2, Icon: "$"},
		{Title: "EUR", Value: CurrencyEUR, ID: 3, Icon: "€"},
		{Title: "RUB", Value: CurrencyRUB, ID: 4, Icon: "₽"},
		{Title: "KZT", Value: CurrencyKZT, ID: 5, Icon: "₸"},
	}
}

// PaymentPeriodOptions mirrors the payment period picker shown by the frontend.
func PaymentPeriodOptions() []Option {
	return []Option{
		{Title: "Посуточно", Value: PaymentPeriodDaily, ID: 1},
		{Title: "Еженедельно", Value: PaymentPeriodWeekly, ID: 2},
		{Title: "Ежемесячно", Value: PaymentPeriodMonthly, ID: 3},
		{Title: "Ежегодно", Value: PaymentPeriodYearly, ID: 4},
	}
}
