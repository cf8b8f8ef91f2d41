// Package boundary turns raw gap scores into segment boundaries.
//
// The stages mirror Hearst's TextTiling boundary detection: the score curve is
// optionally smoothed with a mean filter, every gap gets a depth score (how far
// the curve climbs away from the gap on both sides), gaps whose depth clears
// the mean-minus-half-stddev cutoff become boundary candidates, and each chosen
// gap is snapped to the nearest recorded paragraph break.
package boundary
