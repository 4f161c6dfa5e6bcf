package entity

// OrderStatus is the lifecycle state of an order. Transitions happen outside
// this service; here it is only stored at creation and displayed.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDIENTE"
	OrderConfirmed OrderStatus = "CONFIRMADO"
	OrderShipped   OrderStatus = "ENVIADO"
	OrderDelivered OrderStatus = "ENTREGADO"
	OrderCancelled OrderStatus = "CANCELADO"
)

func (s OrderStatus) String() string { return string(s) }
