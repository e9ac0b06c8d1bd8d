package packages

// Package codes accepted by the checkout flow. Prices are minor currency
// units (USD cents) and live here, not in the database.
const (
	Starter      = "starter"
	Professional = "professional"
	Enterprise   = "enterprise"
)

type Package struct {
	Code        string
	DisplayName string
	Amount      int64
}

var table = map[string]Package{
	Starter: {
		Code:        Starter,
		DisplayName: "Starter Ad Package - 5 Custom Ad Cards",
		Amount:      8900,
	},
	Professional: {
		Code:        Professional,
		DisplayName: "Professional Ad Package - 15 Custom Ad Cards",
		Amount:      19700,
	},
	Enterprise: {
		Code:        Enterprise,
		DisplayName: "Enterprise Ad Package - 50 Custom Ad Cards + Landing Page",
		Amount:      49700,
	},
}

// ByCode returns the package for a code, ok=false for anything outside the
// fixed set.
func ByCode(code string) (Package, bool) {
	pkg, ok := table[code]
	return pkg, ok
}
