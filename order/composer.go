// Package order turns cart line items and customer details into the outbound
// WhatsApp handoff: a running subtotal, a formatted message and a deep link.
// Opening the link IS the order; there is no confirmation channel and no
// retry, so the composer holds no state beyond its inputs.
package order

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	headerLine  = "🪔 Grazie.lk Sacred Order"
	closingLine = "Thank you for your trust and devotion. We will contact you soon to confirm ✨"
)

// Line is a single product/quantity pairing within an order.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
}

// Total is the line's extended price.
func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// ClampQuantity enforces the minimum order quantity of 1.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// Order is the full set of composer inputs.
type Order struct {
	Items        []Line `json:"items"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Note         string `json:"note"`
}

// Subtotal is Σ(unitPrice × quantity) over all line items.
func (o Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Total()
	}
	return sum
}

// Valid reports whether the order can be submitted: name, phone and location
// all non-empty after trimming. An invalid order must never produce a link.
func (o Order) Valid() bool {
	return strings.TrimSpace(o.CustomerName) != "" &&
		strings.TrimSpace(o.Phone) != "" &&
		strings.TrimSpace(o.Location) != ""
}

// Message renders the order as the storefront's WhatsApp text. Line items are
// rendered one per line; the structure and ordering of the blocks is fixed.
func (o Order) Message() string {
	var b strings.Builder

	b.WriteString(headerLine)
	b.WriteString("\n\n")
	o.writeCustomerBlock(&b)
	b.WriteString("\n\n")

	for i, item := range o.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (x%d) - %s", item.Name, item.Quantity, FormatRupees(item.Total()))
	}

	o.writeFooterBlocks(&b)
	return b.String()
}

// SingleItemMessage renders the direct order-form variant, with the item's
// name, category, unit price and quantity on separate lines. Falls back to
// the cart rendering when the order holds more than one line.
func (o Order) SingleItemMessage() string {
	if len(o.Items) != 1 {
		return o.Message()
	}
	item := o.Items[0]

	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteString("\n\n")
	o.writeCustomerBlock(&b)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Item: %s\n", item.Name)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Unit Price: %s\n", FormatRupees(item.UnitPrice))
	fmt.Fprintf(&b, "Quantity: %d", item.Quantity)

	o.writeFooterBlocks(&b)
	return b.String()
}

func (o Order) writeCustomerBlock(b *strings.Builder) {
	fmt.Fprintf(b, "Customer Name: %s\n", strings.TrimSpace(o.CustomerName))
	fmt.Fprintf(b, "Phone: %s\n", strings.TrimSpace(o.Phone))
	fmt.Fprintf(b, "Delivery Location: %s", strings.TrimSpace(o.Location))
}

func (o Order) writeFooterBlocks(b *strings.Builder) {
	b.WriteString("\n\n")
	fmt.Fprintf(b, "Total Amount: %s", FormatRupees(o.Subtotal()))
	b.WriteString("\n\n")

	note := strings.TrimSpace(o.Note)
	if note == "" {
		note = "None"
	}
	fmt.Fprintf(b, "Special Notes: %s", note)
	b.WriteString("\n\n")
	b.WriteString(closingLine)
}

// Link builds the wa.me deep link for the given destination number and an
// already-rendered message. The message is percent-encoded the way browsers
// encode URI components (spaces as %20, not +).
func Link(number, msg string) string {
	return "https://wa.me/" + number + "?text=" + encodeComponent(msg)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
