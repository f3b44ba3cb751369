package pricing

import _ "embed"

// Reference fuel densities and prices. Diesel figures are from the Miyata
// machine-rate worksheet; gasoline reuses the diesel price and tax.

//go:embed data/fuels.json
var rawFuelsJSON []byte
