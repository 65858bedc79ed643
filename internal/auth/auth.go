// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package auth implements the wallet-address allow-list gate for the
// admin surfaces. The check is advisory: it decides what the UI shows,
// not what an attacker can do. Real access control would need
// server-side signature verification, which is deliberately out of
// scope for a personal site.
package auth

import "strings"

// ParseAllowList splits a comma-separated list of wallet addresses into
// its non-empty, trimmed entries.
func ParseAllowList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// IsAuthorized reports whether address is on the allow-list. Addresses
// compare case-insensitively since EIP-55 checksum casing varies by
// wallet. An empty address or empty list never authorizes.
func IsAuthorized(address string, allowList []string) bool {
	if address == "" {
		return false
	}
	for _, allowed := range allowList {
		if strings.EqualFold(address, allowed) {
			return true
		}
	}
	return false
}
