// Package profile implements VehicleProfile: a per-highway-class speed
// factor table used to bias or forbid edges during pathfinding.
//
// A factor greater than 1 marks a highway class as preferred, a factor
// strictly between 0 and 1 marks it as avoided, and a factor of exactly
// 0 blocks it outright. An edge with no "highway" tag is never blocked,
// regardless of profile.
package profile
