// Package vehicle contains the Vehicle aggregate and its lifecycle status.
//
// A vehicle is identified internally by a kernel.UUID and externally by its
// VIN, which is unique and immutable after creation. The status enumeration
// is freely assignable: the domain documents an intended production and
// delivery sequence but deliberately does not enforce transition legality.
package vehicle
