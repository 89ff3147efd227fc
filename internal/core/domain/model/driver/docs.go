// Package driver implements the driver aggregate.
//
// A driver is eligible for assignment while Available and holding an
// unexpired license; the license remains valid through its expiry day.
// Suspension takes a driver out of rotation and is reversible via Resume.
package driver
