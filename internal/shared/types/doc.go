// Package types defines the browsing-data entities persisted by the
// storage service and the service/tool catalog types consumed by the
// chrome UI through the HTTP surface.
package types
