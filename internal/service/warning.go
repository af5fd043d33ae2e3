package service

import "fmt"

// Warning codes for advisory conditions that do not fail the operation.
const (
	WarningStockExceeded = "STOCK_EXCEEDED"
	WarningItemNotFound  = "ITEM_NOT_FOUND"
)

// Warning is a non-fatal advisory attached to an otherwise successful
// operation. Stock limits are advisory in the storefront, so exceeding them
// warns instead of erroring.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func stockWarning(productName, variantSKU string, requested, stock int) Warning {
	return Warning{
		Code: WarningStockExceeded,
		Message: fmt.Sprintf("%s (%s): requested quantity %d exceeds available stock %d",
			productName, variantSKU, requested, stock),
	}
}
