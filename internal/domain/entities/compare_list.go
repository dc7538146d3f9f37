package entities

import "slices"

// MaxCompareItems bounds the number of products compared side by side.
const MaxCompareItems = 3

// CompareList is an ordered set of at most MaxCompareItems product IDs.
// The zero value is an empty list.
type CompareList struct {
	ids []int64
}

// Add appends productID. It is silently ignored when the list is full or
// already holds the product; the return value reports whether it was added.
func (c *CompareList) Add(productID int64) bool {
	if len(c.ids) >= MaxCompareItems || c.Contains(productID) {
		return false
	}
	c.ids = append(c.ids, productID)
	return true
}

// Remove drops productID if present.
func (c *CompareList) Remove(productID int64) {
	c.ids = slices.DeleteFunc(c.ids, func(id int64) bool { return id == productID })
}

// Clear empties the list.
func (c *CompareList) Clear() {
	c.ids = nil
}

// Contains reports whether productID is in the list.
func (c *CompareList) Contains(productID int64) bool {
	return slices.Contains(c.ids, productID)
}

// Len returns the number of entries.
func (c *CompareList) Len() int { return len(c.ids) }

// IDs returns a copy of the entries in insertion order.
func (c *CompareList) IDs() []int64 {
	out := make([]int64, len(c.ids))
	copy(out, c.ids)
	return out
}
