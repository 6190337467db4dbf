package control

import "github.com/zeusync/fcs/pkg/axis"

// Combine sums feedforward and feedback per slot. It does not clamp; the
// safety stage bounds the result so the raw intent stays inspectable.
func Combine(feedforward, feedback axis.Vector6) axis.Vector6 {
	return feedforward.Add(feedback)
}
