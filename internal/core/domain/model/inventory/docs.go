// Package inventory contains the InventoryItem aggregate and its derived
// stock status.
//
// The status is never an independent write target. Every mutation after
// creation recomputes it from the quantity and reorder level:
//
//	OUT_OF_STOCK  quantity == 0
//	LOW_STOCK     0 < quantity <= reorderLevel
//	IN_STOCK      otherwise
//
// Creation is the one exception: the status starts IN_STOCK without running
// the derivation, faithful to the original system.
package inventory
