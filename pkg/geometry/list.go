package geometry

import (
	"spheretrace/pkg/core"
)

// HittableList aggregates hittable objects and resolves the nearest hit
// among them. Insertion order does not affect the result.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty aggregate
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the aggregate
func (l *HittableList) Add(obj core.Hittable) {
	l.Objects = append(l.Objects, obj)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit scans all objects and returns the closest qualifying hit. The search
// interval's upper bound narrows to the closest t found so far, so a later
// object can only replace the record with a strictly nearer hit.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if hit, isHit := obj.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
