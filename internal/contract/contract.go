// Package contract provides configuration and shared utilities for internal architecture.
package contract
