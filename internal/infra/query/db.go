// Package query holds the SQL statements of the service. Every method takes
// the DBTX to run on, so the same Queries value serves pool and transaction.
package query

import "dynamic-pricing/internal/infra/db"

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
