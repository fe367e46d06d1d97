// Package data embeds the snapshots served when no file path is configured.
package data

import (
	_ "embed"
)

// Shipments is the default shipment ledger snapshot.
//
//go:embed shipments.json
var Shipments []byte

// Catalog is the default product catalog.
//
//go:embed catalog.json
var Catalog []byte
