package payment

import "strings"

// Manual payment channels for the Nepali market. Payment itself happens
// out-of-band; the storefront only shows where to send money and how.
const (
	MethodESewa        = "ESEWA"
	MethodKhalti       = "KHALTI"
	MethodIMEPay       = "IME_PAY"
	MethodBankTransfer = "BANK_TRANSFER"
)

type Method struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Account string `json:"account"`
}

var methods = []Method{
	{Code: MethodESewa, Label: "eSewa", Account: "9812345678"},
	{Code: MethodKhalti, Label: "Khalti", Account: "9812345678"},
	{Code: MethodIMEPay, Label: "IME Pay", Account: "9812345678"},
	{Code: MethodBankTransfer, Label: "Bank Transfer", Account: "0123456789012345 (Nabil Bank)"},
}

// Methods returns the supported manual payment channels.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// Lookup finds a payment method by code.
func Lookup(code string) (Method, bool) {
	for _, m := range methods {
		if m.Code == code {
			return m, true
		}
	}
	return Method{}, false
}

var instructionMap = map[string][]string{
	MethodESewa: {
		"Open the eSewa app and choose Send Money",
		"Send {{amount}} to eSewa ID {{account}}",
		"Take a screenshot of the payment confirmation",
		"Send the screenshot via the WhatsApp confirmation link",
	},

	MethodKhalti: {
		"Open the Khalti app and choose Send Money",
		"Send {{amount}} to Khalti ID {{account}}",
		"Take a screenshot of the payment confirmation",
		"Send the screenshot via the WhatsApp confirmation link",
	},

	MethodIMEPay: {
		"Open the IME Pay app and choose Send Money",
		"Send {{amount}} to IME Pay ID {{account}}",
		"Take a screenshot of the payment confirmation",
		"Send the screenshot via the WhatsApp confirmation link",
	},

	MethodBankTransfer: {
		"Transfer {{amount}} to account {{account}} from mobile banking or a branch",
		"Keep the transfer receipt or take a screenshot",
		"Send the receipt via the WhatsApp confirmation link",
	},
}

// GetInstructions returns the payment steps for a method, with a generic
// fallback for unknown codes.
func GetInstructions(code string) []string {
	if steps, ok := instructionMap[code]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in instruction steps.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}
