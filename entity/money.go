package entity

import "github.com/shopspring/decimal"

func init() {
	// prices go out as JSON numbers, the frontend formats them with toFixed
	decimal.MarshalJSONWithoutQuotes = true
}
