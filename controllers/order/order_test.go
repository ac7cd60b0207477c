package ordercontroller

import (
	"testing"

	"github.com/prabeth/vovos-pedidos-online/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPaymentMethod(t *testing.T) {
	m, err := mapPaymentMethod("zelle")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentZelle, m)

	m, err = mapPaymentMethod("CASH")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCash, m)

	_, err = mapPaymentMethod("card")
	assert.Error(t, err)
}

func TestLinesTotalUsesStoredUnitPrices(t *testing.T) {
	// Unit prices here are the ones captured at submission time. An admin
	// edit reprices from these, so a later catalog change is irrelevant.
	lines := []lineInput{
		{ProductID: "p1", Name: "Bolo", UnitPrice: 5.00, Quantity: 3},
		{ProductID: "p2", Name: "Brigadeiro", UnitPrice: 3.00, Quantity: 1},
	}
	assert.InDelta(t, 18.00, linesTotal(lines), 1e-9)
	assert.Zero(t, linesTotal(nil))
}

func TestLinesSummaryFormat(t *testing.T) {
	lines := []lineInput{
		{Name: "Bolo", UnitPrice: 5.00, Quantity: 2},
		{Name: "Brigadeiro", UnitPrice: 3.00, Quantity: 1},
	}
	assert.Equal(t, "2xBolo\n1xBrigadeiro", linesSummary(lines))
	assert.Equal(t, "", linesSummary(nil))
}

func TestGenerateOrderRefUnique(t *testing.T) {
	assert.NotEqual(t, generateOrderRef(), generateOrderRef())
}

func TestPhonePattern(t *testing.T) {
	assert.True(t, phonePattern.MatchString("(770) 111-2222"))
	assert.False(t, phonePattern.MatchString("7701112222"))
	assert.False(t, phonePattern.MatchString("(770)111-2222"))
}
