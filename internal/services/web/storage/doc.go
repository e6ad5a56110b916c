// Package storage holds the storage interfaces and record types consumed by
// the web service. Implementations live in subpackages (sqlite).
package storage
