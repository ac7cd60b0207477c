package intake

import "errors"

// Local validation failures. These abort an action before any network call
// and leave all state untouched.
var (
	ErrBadDate       = errors.New("intake: invalid date")
	ErrSundayClosed  = errors.New("intake: sundays are closed")
	ErrDaySoldOut    = errors.New("intake: day is sold out")
	ErrInvalidSlot   = errors.New("intake: slot not in schedule")
	ErrSlotRequired  = errors.New("intake: pick a time slot")
	ErrDateRequired  = errors.New("intake: pick a date")
	ErrEmptyCart     = errors.New("intake: cart is empty")
	ErrInvalidPhone  = errors.New("intake: phone is incomplete")
	ErrNameRequired  = errors.New("intake: name is required")
	ErrInvalidMethod = errors.New("intake: unknown payment method")
	ErrSubmitPending = errors.New("intake: submission already in flight")
)

// User-facing texts for failures that are not local validation.
const (
	MsgServerFallback = "Não foi possível concluir o pedido. Tente novamente."
	MsgConnectivity   = "Falha de conexão. Verifique sua internet e tente novamente."
)

// ServerError carries the message the store reported for a non-success
// response. The message is shown to the user verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// TransportError wraps a request that produced no response at all (refused,
// timed out, connection dropped). The user sees a generic connectivity text;
// the wrapped error stays available for logs.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "intake: transport failure: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage translates a submission error into the text to display.
func UserMessage(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	var te *TransportError
	if errors.As(err, &te) {
		return MsgConnectivity
	}
	switch {
	case errors.Is(err, ErrSlotRequired):
		return "Escolha um horário para continuar."
	case errors.Is(err, ErrDateRequired):
		return "Escolha uma data para continuar."
	case errors.Is(err, ErrEmptyCart):
		return "Adicione pelo menos um item ao pedido."
	case errors.Is(err, ErrInvalidPhone):
		return "Informe um telefone no formato (XXX) XXX-XXXX."
	case errors.Is(err, ErrNameRequired):
		return "Informe seu nome."
	case errors.Is(err, ErrSundayClosed):
		return "Não abrimos aos domingos."
	case errors.Is(err, ErrDaySoldOut):
		return "Dia esgotado."
	}
	return MsgServerFallback
}
