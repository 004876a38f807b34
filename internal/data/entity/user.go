package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User carries the wallet balance alongside the credentials. Balance is in
// the smallest currency unit and is only ever mutated through atomic
// increments at the repository layer.
type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Balance      int64    `db:"balance"`
}
