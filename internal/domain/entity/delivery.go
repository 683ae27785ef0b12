package entity

import "time"

// Delivery representa una entrega de paquete.
// PackageID es único a nivel de store; ActualDeliveryDate es nil mientras
// la entrega no se haya concretado.
type Delivery struct {
	ID                   int64
	PackageID            string
	ClientName           string
	Origin               string
	Destination          string
	Status               string
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	OnTime               bool
}
