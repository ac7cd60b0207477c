package intake

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/prabeth/vovos-pedidos-online/models"
)

var summaryLine = regexp.MustCompile(`^(\d+)x(.+)$`)

// ItemsSummary renders the cart as one "QTYxNAME" line per entry, in cart
// insertion order. Names come from the catalog snapshot, falling back to the
// product id for unknown entries.
func ItemsSummary(cart *Cart, catalog Catalog) string {
	var lines []string
	for _, line := range cart.Lines() {
		lines = append(lines, fmt.Sprintf("%dx%s", line.Quantity, catalog.NameOf(line.ProductID)))
	}
	return strings.Join(lines, "\n")
}

// ParseItemsSummary re-derives name->quantity from a "QTYxNAME" block. This
// is the compatibility shim for text stored on old orders; new code should
// prefer the normalized lines.
func ParseItemsSummary(summary string) map[string]int {
	items := make(map[string]int)
	for _, line := range strings.Split(summary, "\n") {
		m := summaryLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}
		items[m[2]] = qty
	}
	return items
}

// ConfirmationMessage builds the outbound order summary. It is pure: the
// same draft and catalog snapshot always produce the same bytes.
func ConfirmationMessage(d Draft, catalog Catalog) string {
	var b strings.Builder
	b.WriteString("Novo pedido\n")
	b.WriteString("Nome: " + d.Name + "\n")
	b.WriteString("Telefone: " + d.Phone + "\n")
	b.WriteString("Data: " + d.Date + "\n")
	b.WriteString("Horário: " + d.Slot + "\n")
	b.WriteString("Itens:\n")
	b.WriteString(ItemsSummary(d.Cart, catalog))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: $%.2f\n", d.Cart.Total(catalog))
	switch d.Payment {
	case models.PaymentZelle:
		b.WriteString("Pagamento: Zelle (enviaremos os dados por mensagem)")
	default:
		b.WriteString("Pagamento: Dinheiro na retirada")
	}
	return b.String()
}

// MessageLink builds the WhatsApp deep link that carries the message text.
// Opening it is fire-and-forget; nothing observes whether it succeeded.
func MessageLink(businessPhone, text string) string {
	var digits strings.Builder
	for _, r := range businessPhone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}
