package ledger

import "github.com/rmercado/kahera/pkg/money"

const (
	feeBlockCentavos = 500_00 // each started ₱500 block
	feePerBlock      = 5_00   // charges ₱5
)

// QuoteFee computes the counter's service fee: ₱5 for every started ₱500
// block of the transaction amount. QuoteFee(₱500) = ₱5, QuoteFee(₱501) = ₱10.
// A non-positive amount quotes a zero fee; callers reject those amounts
// before quoting.
func QuoteFee(amount money.Money) money.Money {
	if !amount.IsPositive() {
		return money.Zero
	}
	blocks := (amount.Centavos() + feeBlockCentavos - 1) / feeBlockCentavos
	return money.FromCentavos(blocks * feePerBlock)
}
