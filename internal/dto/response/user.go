package response

type BalanceResponse struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}
