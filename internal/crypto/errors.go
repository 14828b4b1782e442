// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrAuthentication is returned by [Cipher.Decrypt] whenever a token cannot be
// opened: wrong key, truncated or corrupted token, unknown version, or a
// failed HMAC check. No plaintext is ever returned alongside it.
var ErrAuthentication = errors.New("token authentication failed")
