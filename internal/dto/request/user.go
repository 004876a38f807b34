package request

type RechargeRequest struct {
	// Amount in the smallest currency unit
	Amount int64 `json:"amount" validate:"required,gt=0"`
}
