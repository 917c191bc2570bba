// internal/model/customer.go
package model

type Customer struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	City  string `db:"city" json:"city"`
	Email string `db:"email" json:"email"`
}
