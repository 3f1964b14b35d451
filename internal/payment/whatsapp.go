package payment

import (
	"fmt"
	"net/url"
	"strings"

	"digipasal-be/internal/utils"
)

// ConfirmationDetails is everything the operator needs to match a manual
// payment to an order.
type ConfirmationDetails struct {
	Name        string
	Email       string
	MethodLabel string
	Amount      int64
	Account     string
	ItemSummary string
}

// ConfirmationMessage builds the structured plaintext the customer sends
// after paying.
func ConfirmationMessage(d ConfirmationDetails) string {
	var b strings.Builder

	b.WriteString("Payment Confirmation\n")
	fmt.Fprintf(&b, "Name: %s\n", d.Name)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Payment Method: %s\n", d.MethodLabel)
	fmt.Fprintf(&b, "Amount: %s\n", utils.FormatNPR(d.Amount))
	fmt.Fprintf(&b, "Paid To: %s\n", d.Account)
	fmt.Fprintf(&b, "Items: %s\n", d.ItemSummary)
	b.WriteString("I have attached the payment screenshot.")

	return b.String()
}

// WhatsAppLink returns a wa.me deep link prefilled with the confirmation
// message. The number must be in international format without "+".
func WhatsAppLink(number string, d ConfirmationDetails) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		strings.TrimPrefix(number, "+"),
		url.QueryEscape(ConfirmationMessage(d)),
	)
}
