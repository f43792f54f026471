package domain

import "fmt"

// OrderOutcome is the exchange's decoded order response. It is opaque to
// this client: everything is passed through verbatim, and only the order
// identifier is inspected for the final success log line.
type OrderOutcome map[string]any

// OrderID returns the exchange-assigned order identifier, or "" when the
// response carried none. The wire value is numeric; decoding with
// json.Number keeps it exact.
func (o OrderOutcome) OrderID() string {
	v, ok := o["orderId"]
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}
