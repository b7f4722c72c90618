package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(items ...Line) Order {
	return Order{
		Items:        items,
		CustomerName: "Nimal Perera",
		Phone:        "0771234567",
		Location:     "Colombo 07",
	}
}

func TestSubtotal(t *testing.T) {
	o := validOrder(
		Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 2},
		Line{Name: "Incense Holder", UnitPrice: 750, Quantity: 1},
	)
	assert.Equal(t, 3750.0, o.Subtotal())

	assert.Equal(t, 0.0, validOrder().Subtotal())
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "Rs. 3,000", FormatRupees(3000))
	assert.Equal(t, "Rs. 750", FormatRupees(750))
	assert.Equal(t, "Rs. 125,500", FormatRupees(125500))
	assert.Equal(t, "Rs. 0", FormatRupees(0))
}

func TestMessageLayout(t *testing.T) {
	o := validOrder(Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 2, Category: "Lamps"})
	msg := o.Message()

	require.True(t, strings.HasPrefix(msg, "🪔 Grazie.lk Sacred Order"))
	assert.Contains(t, msg, "Customer Name: Nimal Perera")
	assert.Contains(t, msg, "Phone: 0771234567")
	assert.Contains(t, msg, "Delivery Location: Colombo 07")
	assert.Contains(t, msg, "- Brass Diya (x2) - Rs. 3,000")
	assert.Contains(t, msg, "Total Amount: Rs. 3,000")
	assert.Contains(t, msg, "Special Notes: None")
	assert.True(t, strings.HasSuffix(msg, "confirm ✨"))
}

func TestMessageMultipleLines(t *testing.T) {
	o := validOrder(
		Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 2},
		Line{Name: "Incense Holder", UnitPrice: 750, Quantity: 3},
	)
	msg := o.Message()

	assert.Contains(t, msg, "- Brass Diya (x2) - Rs. 3,000\n- Incense Holder (x3) - Rs. 2,250")
	assert.Contains(t, msg, "Total Amount: Rs. 5,250")
}

func TestMessageNotePassedThrough(t *testing.T) {
	o := validOrder(Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 1})
	o.Note = "  Please gift wrap  "
	assert.Contains(t, o.Message(), "Special Notes: Please gift wrap")
}

func TestSingleItemMessage(t *testing.T) {
	o := validOrder(Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 2, Category: "Lamps"})
	msg := o.SingleItemMessage()

	assert.Contains(t, msg, "Item: Brass Diya")
	assert.Contains(t, msg, "Category: Lamps")
	assert.Contains(t, msg, "Unit Price: Rs. 1,500")
	assert.Contains(t, msg, "Quantity: 2")
	assert.Contains(t, msg, "Total Amount: Rs. 3,000")
	assert.NotContains(t, msg, "- Brass Diya (x2)")
}

func TestSingleItemMessageFallsBackForMultipleLines(t *testing.T) {
	o := validOrder(
		Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 1},
		Line{Name: "Incense Holder", UnitPrice: 750, Quantity: 1},
	)
	assert.Equal(t, o.Message(), o.SingleItemMessage())
}

func TestValid(t *testing.T) {
	o := validOrder(Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 1})
	require.True(t, o.Valid())

	blank := o
	blank.CustomerName = "   "
	assert.False(t, blank.Valid())

	blank = o
	blank.Phone = ""
	assert.False(t, blank.Valid())

	blank = o
	blank.Location = "\t"
	assert.False(t, blank.Valid())
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-5))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
}

func TestLinkEncoding(t *testing.T) {
	link := Link("94767764438", "Hello World & Sons")

	require.True(t, strings.HasPrefix(link, "https://wa.me/94767764438?text="))
	// Spaces encode as %20, never +
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "Hello%20World%20%26%20Sons")
}

func TestLinkRoundTripsFullMessage(t *testing.T) {
	o := validOrder(Line{Name: "Brass Diya", UnitPrice: 1500, Quantity: 2})
	link := Link("94767764438", o.Message())

	assert.NotContains(t, link, "+")
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "%0A") // newlines survive encoding
}
