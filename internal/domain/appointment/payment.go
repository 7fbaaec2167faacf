package appointment

type PaymentMethod string

const (
	PaymentMoney      PaymentMethod = "money"
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentMoney, PaymentPix, PaymentCreditCard, PaymentDebitCard:
		return PaymentMethod(s), true
	}
	return "", false
}
