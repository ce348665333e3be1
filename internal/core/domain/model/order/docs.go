// Package order contains the PurchaseOrder aggregate for customer vehicle
// purchases. It mirrors the vehicle lifecycle in shape but publishes no
// events; the only transition side effect is stamping the actual delivery
// date when the status is set to DELIVERED.
package order
