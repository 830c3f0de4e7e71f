// Package connector implements assets.Connector on top of storage backends.
// The local connector keeps files below a root directory on disk; the public
// and private asset stores are two such connectors with different roots.
package connector
