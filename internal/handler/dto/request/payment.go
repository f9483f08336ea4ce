package request

import "stay-marketplace/internal/usecase/commands"

type CreatePaymentRequest struct {
	BookingID *string `json:"booking_id"`
}

// GatewayWebhookRequest is posted by the payment gateway when a transaction settles.
type GatewayWebhookRequest struct {
	TransactionReference string `json:"transaction_reference" binding:"required"`
	Status               string `json:"status" binding:"required" enums:"COMPLETED,FAILED"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
}

func (r *GatewayWebhookRequest) ToUpdate() commands.GatewayUpdate {
	return commands.GatewayUpdate{
		TransactionReference: r.TransactionReference,
		Status:               r.Status,
		GatewayTransactionID: r.GatewayTransactionID,
	}
}
