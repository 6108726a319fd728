/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "bitbracket/0.3.0 (+https://github.com/mikeb26/bitbracket)"
	WebCacheBucket = "bopmatic-bitbracket-prod-webcache"
)
