package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceErrorMessage is the fixed substring downstream consumers match on
// when a conversion charge fails its balance invariant.
const BalanceErrorMessage = "Conversion charges must have a ledger balance"

// balanceTolerance absorbs decimal dust in local currency: half a cent.
var balanceTolerance = decimal.RequireFromString("0.005")

// validateConversionBalance enforces that the signed local-currency sum of
// a conversion charge's legs nets to zero within tolerance.
func validateConversionBalance(balance decimal.Decimal) error {
	if balance.Abs().LessThan(balanceTolerance) {
		return nil
	}

	return &CommonError{
		Message: fmt.Sprintf("%s (balance: %s)", BalanceErrorMessage, balance.Round(4)),
	}
}
